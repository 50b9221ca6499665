package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"habitly/internal/auth"
	apperrors "habitly/internal/errors"
	"habitly/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository) AuthService {
	hasher := auth.NewPasswordHasher(auth.DefaultBcryptCost)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, hasher, jwtService)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "user@x.com",
			password: "pw1secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "user@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@x.com",
			password: "pw1secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@x.com").Return(&model.User{EmailAddress: "existing@x.com"}, nil)
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
		{
			name:     "email already registered regardless of password",
			email:    "existing@x.com",
			password: "a-totally-different-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@x.com").Return(&model.User{EmailAddress: "existing@x.com"}, nil)
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
		{
			name:     "concurrent duplicate caught by unique index",
			email:    "raced@x.com",
			password: "pw1secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "raced@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo)
			user, err := service.Register(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.EmailAddress)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NotNil(t, user.Profile, "registration attaches an empty profile")
				assert.Nil(t, user.Profile.FirstName)
				assert.Nil(t, user.Profile.LastName)
				assert.Nil(t, user.Profile.Bio)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewPasswordHasher(auth.DefaultBcryptCost)
	storedHash, err := hasher.Hash("pw1secret")
	assert.NoError(t, err)

	storedUser := &model.User{
		ID:           7,
		EmailAddress: "user@x.com",
		PasswordHash: storedHash,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "user@x.com",
			password: "pw1secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "user@x.com").Return(storedUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "pw1secret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAuthenticationFailed,
		},
		{
			name:     "wrong password",
			email:    "user@x.com",
			password: "pw2wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "user@x.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := newTestAuthService(mockRepo)
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Unknown email and wrong password must be the same error.
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.EmailAddress)

				// The token's subject is the email it was issued for.
				jwtService := auth.NewJWTService("test-secret", time.Hour)
				subject, err := jwtService.Parse(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.email, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
