package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"habitly/internal/cache"
	apperrors "habitly/internal/errors"
	"habitly/internal/model"
	"habitly/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user reads and profile updates.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, email string, incoming *model.Profile) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(user.ID), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile merges the incoming partial profile into the stored one. A
// field is overwritten only when it is set on the incoming profile and
// differs from the stored value; each of the three fields is decided on its
// own. Passing the stored profile object itself is rejected outright; note
// that this is a pointer comparison, so an equal-by-value copy is accepted
// and simply results in no field changing.
func (s *userService) UpdateProfile(ctx context.Context, email string, incoming *model.Profile) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	stored := user.Profile
	if stored == nil {
		stored = &model.Profile{UserID: user.ID}
		user.Profile = stored
	}

	if incoming == stored {
		return nil, apperrors.ErrNoChangeRequested
	}

	if incoming.FirstName != nil && !sameValue(stored.FirstName, incoming.FirstName) {
		stored.FirstName = incoming.FirstName
	}
	if incoming.LastName != nil && !sameValue(stored.LastName, incoming.LastName) {
		stored.LastName = incoming.LastName
	}
	if incoming.Bio != nil && !sameValue(stored.Bio, incoming.Bio) {
		stored.Bio = incoming.Bio
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

// sameValue reports whether the stored optional field already holds the
// incoming value. incoming is non-nil at every call site.
func sameValue(stored, incoming *string) bool {
	return stored != nil && *stored == *incoming
}
