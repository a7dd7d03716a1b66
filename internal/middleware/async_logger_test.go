//go:build !integration

package middleware

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// capturingLogs returns a logging mock that records every batch it receives.
func capturingLogs(err error) (*mocks.MockLoggingService, func() [][]*model.LogEntry) {
	var (
		mu      sync.Mutex
		batches [][]*model.LogEntry
	)
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, args.Get(1).([]*model.LogEntry))
		}).
		Return(err)

	return svc, func() [][]*model.LogEntry {
		mu.Lock()
		defer mu.Unlock()
		return append([][]*model.LogEntry(nil), batches...)
	}
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))

	var al *AsyncLogger
	assert.False(t, al.Log(&model.LogEntry{}))
	al.Stop()
}

func TestAsyncLogger_WritesInBatches(t *testing.T) {
	svc, batches := capturingLogs(nil)
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     3,
		FlushInterval: time.Hour,
		WriteTimeout:  time.Second,
	})

	for i := 0; i < 7; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "entry"}))
	}
	al.Stop()

	got := batches()
	total := 0
	for _, b := range got {
		assert.LessOrEqual(t, len(b), 3)
		total += len(b)
	}
	assert.Equal(t, 7, total)

	enqueued, dropped, written, failed := al.Stats()
	assert.Equal(t, int64(7), enqueued)
	assert.Zero(t, dropped)
	assert.Equal(t, int64(7), written)
	assert.Zero(t, failed)
}

func TestAsyncLogger_FlushesOnInterval(t *testing.T) {
	svc, batches := capturingLogs(nil)
	al := NewAsyncLogger(svc, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     100,
		FlushInterval: 10 * time.Millisecond,
		WriteTimeout:  time.Second,
	})
	defer al.Stop()

	require.True(t, al.Log(&model.LogEntry{Message: "lonely"}))

	assert.Eventually(t, func() bool { return len(batches()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_CountsFailedWrites(t *testing.T) {
	svc, _ := capturingLogs(errors.New("mongo down"))
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})

	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})
	al.Stop()

	_, _, written, failed := al.Stats()
	assert.Zero(t, written)
	assert.Equal(t, int64(2), failed)
}

func TestAsyncLogger_DropsWhenStopped(t *testing.T) {
	svc, _ := capturingLogs(nil)
	al := NewAsyncLogger(svc, DefaultAsyncLoggerConfig())
	al.Stop()
	al.Stop()

	assert.False(t, al.Log(&model.LogEntry{}))
}
