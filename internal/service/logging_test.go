//go:build !integration

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLoggingService_CreateLog(t *testing.T) {
	existingID := primitive.NewObjectID()

	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*mocks.MockLogsRepository)
		wantError bool
	}{
		{
			name:  "fills id and timestamp",
			entry: &model.LogEntry{Level: "info", Message: "packing calculated", ActionType: model.ActionCalculatePacking},
			setupMock: func(m *mocks.MockLogsRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && !doc.Timestamp.IsZero() && doc.ActionType == model.ActionCalculatePacking
				})).Return(nil)
			},
		},
		{
			name:  "keeps existing id",
			entry: &model.LogEntry{ID: existingID, Level: "info", Timestamp: time.Now()},
			setupMock: func(m *mocks.MockLogsRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return doc.ID == existingID
				})).Return(nil)
			},
		},
		{
			name:  "repository error",
			entry: &model.LogEntry{Level: "info"},
			setupMock: func(m *mocks.MockLogsRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepository)
			tt.setupMock(repo)

			err := service.NewLoggingService(repo).CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, tt.entry.ID.IsZero())
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	tests := []struct {
		name      string
		entries   []*model.LogEntry
		setupMock func(*mocks.MockLogsRepository)
		wantError bool
	}{
		{
			name:    "batch",
			entries: []*model.LogEntry{{Level: "info"}, {Level: "warn"}},
			setupMock: func(m *mocks.MockLogsRepository) {
				m.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
					return len(docs) == 2
				})).Return(nil)
			},
		},
		{
			name:      "empty batch skips repository",
			entries:   nil,
			setupMock: func(*mocks.MockLogsRepository) {},
		},
		{
			name:    "repository error",
			entries: []*model.LogEntry{{Level: "info"}},
			setupMock: func(m *mocks.MockLogsRepository) {
				m.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepository)
			tt.setupMock(repo)

			err := service.NewLoggingService(repo).CreateLogs(context.Background(), tt.entries)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_NilRepository(t *testing.T) {
	svc := service.NewLoggingService(nil)
	assert.ErrorIs(t, svc.CreateLog(context.Background(), &model.LogEntry{}), service.ErrRepositoryNotConfigured)
}
