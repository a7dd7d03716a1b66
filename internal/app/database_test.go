//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestNewCircuitBreaker(t *testing.T) {
	errBoom := errors.New("boom")
	failing := func() error { return errBoom }

	tests := []struct {
		name      string
		cfg       config.DatabaseConfig
		failures  int
		wantState string
	}{
		{
			name:      "unset thresholds fall back to defaults",
			cfg:       config.DatabaseConfig{},
			failures:  4,
			wantState: "closed",
		},
		{
			name:      "default threshold opens on fifth failure",
			cfg:       config.DatabaseConfig{},
			failures:  5,
			wantState: "open",
		},
		{
			name: "configured threshold",
			cfg: config.DatabaseConfig{
				CircuitBreakerFailureThreshold: 2,
				CircuitBreakerTimeout:          time.Minute,
			},
			failures:  2,
			wantState: "open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newCircuitBreaker(tt.cfg, breakerProducts)
			for i := 0; i < tt.failures; i++ {
				_ = cb.Execute(context.Background(), failing)
			}

			stats := cb.GetStats()
			assert.Equal(t, breakerProducts, stats.Name)
			assert.Equal(t, tt.wantState, stats.State)
		})
	}
}

func TestNewCircuitBreaker_IgnoresExpectedErrors(t *testing.T) {
	cb := newCircuitBreaker(config.DatabaseConfig{CircuitBreakerFailureThreshold: 1}, breakerProformas)

	err := cb.Execute(context.Background(), func() error { return repository.ErrNotFound })

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, cb.IsOpen())
}
