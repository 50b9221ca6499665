package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"habitly/internal/auth"
	apperrors "habitly/internal/errors"
	"habitly/internal/model"
)

// memoryUserRepository is a stateful fake used for whole-flow tests.
type memoryUserRepository struct {
	nextID uint
	byID   map[uint]*model.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, byID: make(map[uint]*model.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	for _, u := range r.byID {
		if u.EmailAddress == user.EmailAddress {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	if user.Profile != nil {
		user.Profile.UserID = user.ID
	}
	r.nextID++
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *model.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uint) (*model.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.byID {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) List(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, nil
}

func TestRegisterLoginReconcileFlow(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepository()

	hasher := auth.NewPasswordHasher(auth.DefaultBcryptCost)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	authSvc := NewAuthService(repo, hasher, jwtService)
	userSvc := NewUserService(repo, nil)

	// Register user@x.com with pw1.
	user, err := authSvc.Register(ctx, "user@x.com", "pw1secret")
	assert.NoError(t, err)
	assert.NotNil(t, user.Profile)

	// A second registration fails regardless of the password.
	_, err = authSvc.Register(ctx, "user@x.com", "another-password")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	// Login with pw1 yields a token whose subject is the email.
	token, _, err := authSvc.Login(ctx, "user@x.com", "pw1secret")
	assert.NoError(t, err)
	subject, err := jwtService.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@x.com", subject)

	// Login with pw2 fails like an unknown user would.
	_, _, err = authSvc.Login(ctx, "user@x.com", "pw2wrong")
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)
	_, _, err = authSvc.Login(ctx, "ghost@x.com", "pw1secret")
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationFailed)

	// Reconcile with firstName only: lastName and bio stay unset.
	updated, err := userSvc.UpdateProfile(ctx, "user@x.com", &model.Profile{
		FirstName: strptr("Gaby"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Gaby", *updated.Profile.FirstName)
	assert.Nil(t, updated.Profile.LastName)
	assert.Nil(t, updated.Profile.Bio)

	// The stored profile object itself is still rejected.
	stored, err := repo.FindByEmail(ctx, "user@x.com")
	assert.NoError(t, err)
	_, err = userSvc.UpdateProfile(ctx, "user@x.com", stored.Profile)
	assert.ErrorIs(t, err, apperrors.ErrNoChangeRequested)
}

func TestMemoryRepository_CaseSensitiveEmails(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryUserRepository()
	hasher := auth.NewPasswordHasher(auth.DefaultBcryptCost)
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	authSvc := NewAuthService(repo, hasher, jwtService)

	_, err := authSvc.Register(ctx, "user@x.com", "pw1secret")
	assert.NoError(t, err)

	// Addresses are compared byte-exact; a different casing is a
	// different account.
	_, err = authSvc.Register(ctx, "User@x.com", "pw1secret")
	assert.NoError(t, err)
}
