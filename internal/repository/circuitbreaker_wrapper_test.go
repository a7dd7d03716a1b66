//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/circuitbreaker"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLogsRepo struct {
	calls int
}

func (f *failingLogsRepo) Create(context.Context, *LogEntryDocument) error {
	f.calls++
	return errors.New("connection refused")
}

func (f *failingLogsRepo) CreateMany(context.Context, []*LogEntryDocument) error {
	f.calls++
	return errors.New("connection refused")
}

func newTestBreaker(threshold int) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: threshold,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsSuccessful:     IsExpectedError,
	})
}

func TestProductRepositoryWithCircuitBreaker_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	cb := newTestBreaker(1)
	repo := NewProductRepositoryWithCircuitBreaker(NewMemoryProductRepository(nil), cb)

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrNotFound)

	_, err = repo.Create(ctx, model.Product{ID: "a", Name: "A", PiecesPerCase: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.Product{ID: "a", Name: "A", PiecesPerCase: 1})
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	assert.Same(t, cb, repo.GetCircuitBreaker())
}

func TestLogsRepositoryWithCircuitBreaker_DropsWhenOpen(t *testing.T) {
	ctx := context.Background()
	inner := &failingLogsRepo{}
	repo := NewLogsRepositoryWithCircuitBreaker(inner, newTestBreaker(1))

	assert.Error(t, repo.Create(ctx, &LogEntryDocument{Message: "first"}))
	assert.True(t, repo.GetCircuitBreaker().IsOpen())

	assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{Message: "dropped"}}))
	assert.Equal(t, 1, inner.calls)
}

func TestIsExpectedError(t *testing.T) {
	assert.True(t, IsExpectedError(ErrNotFound))
	assert.True(t, IsExpectedError(ErrDuplicateID))
	assert.False(t, IsExpectedError(errors.New("timeout")))
	assert.False(t, IsExpectedError(nil))
}
