package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lingorelay/internal/errors"
	"lingorelay/internal/model"
)

// MockHistoryRepository is a mock implementation of HistoryRepository.
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Create(ctx context.Context, record *model.TranslationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByOwner(ctx context.Context, owner string, limit int) ([]model.TranslationRecord, error) {
	args := m.Called(ctx, owner, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranslationRecord), args.Error(1)
}

func (m *MockHistoryRepository) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

func TestHistoryService_Save(t *testing.T) {
	tests := []struct {
		name          string
		original      string
		translated    string
		setupMock     func(*MockHistoryRepository)
		expectedError error
	}{
		{
			name:       "successful save",
			original:   "ciao",
			translated: "hello",
			setupMock: func(m *MockHistoryRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.TranslationRecord")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "empty original",
			original:      "",
			translated:    "hello",
			setupMock:     func(m *MockHistoryRepository) {},
			expectedError: apperrors.ErrEmptyText,
		},
		{
			name:          "empty translated",
			original:      "ciao",
			translated:    "",
			setupMock:     func(m *MockHistoryRepository) {},
			expectedError: apperrors.ErrEmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHistoryRepository)
			tt.setupMock(mockRepo)
			svc := NewHistoryService(mockRepo)

			record, err := svc.Save(context.Background(), "a@x.com", tt.original, tt.translated, "it", "en")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, record)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "a@x.com", record.OwnerEmail)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_List_EmptyIsNotNil(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	mockRepo.On("ListByOwner", mock.Anything, "a@x.com", historyListLimit).Return(nil, nil)
	svc := NewHistoryService(mockRepo)

	records, err := svc.List(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHistoryService_Delete(t *testing.T) {
	knownID := uuid.New()

	tests := []struct {
		name          string
		recordID      string
		setupMock     func(*MockHistoryRepository)
		expectedError error
	}{
		{
			name:     "successful delete",
			recordID: knownID.String(),
			setupMock: func(m *MockHistoryRepository) {
				m.On("DeleteByIDAndOwner", mock.Anything, knownID, "a@x.com").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown id maps to not found",
			recordID: knownID.String(),
			setupMock: func(m *MockHistoryRepository) {
				m.On("DeleteByIDAndOwner", mock.Anything, knownID, "a@x.com").Return(apperrors.ErrHistoryNotFound)
			},
			expectedError: apperrors.ErrHistoryNotFound,
		},
		{
			name:          "unparseable id behaves like unknown",
			recordID:      "not-a-uuid",
			setupMock:     func(m *MockHistoryRepository) {},
			expectedError: apperrors.ErrHistoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockHistoryRepository)
			tt.setupMock(mockRepo)
			svc := NewHistoryService(mockRepo)

			err := svc.Delete(context.Background(), "a@x.com", tt.recordID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestHistoryService_Clear_ZeroIsSuccess(t *testing.T) {
	mockRepo := new(MockHistoryRepository)
	mockRepo.On("DeleteAllByOwner", mock.Anything, "a@x.com").Return(int64(0), nil)
	svc := NewHistoryService(mockRepo)

	count, err := svc.Clear(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
