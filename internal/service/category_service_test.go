package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "habitly/internal/errors"
	"habitly/internal/model"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Category, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByNameAndUserID(ctx context.Context, name string, userID uint) (*model.Category, error) {
	args := m.Called(ctx, name, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func TestCategoryService_Create(t *testing.T) {
	tests := []struct {
		name          string
		categoryName  string
		setupMock     func(*MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "successful creation",
			categoryName: "Morning Routine",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByNameAndUserID", mock.Anything, "Morning Routine", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:         "duplicate name for user",
			categoryName: "Morning Routine",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByNameAndUserID", mock.Anything, "Morning Routine", uint(1)).Return(&model.Category{Name: "Morning Routine", UserID: 1}, nil)
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
		{
			name:         "concurrent duplicate caught by unique index",
			categoryName: "Bed Time",
			setupMock: func(m *MockCategoryRepository) {
				m.On("FindByNameAndUserID", mock.Anything, "Bed Time", uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			tt.setupMock(mockRepo)

			svc := NewCategoryService(mockRepo)
			category, err := svc.Create(context.Background(), 1, tt.categoryName, "some description")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, category)
				assert.Equal(t, tt.categoryName, category.Name)
				assert.Equal(t, uint(1), category.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("Delete", mock.Anything, uint(42), uint(1)).Return(gorm.ErrRecordNotFound)

	svc := NewCategoryService(mockRepo)
	err := svc.Delete(context.Background(), 42, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
