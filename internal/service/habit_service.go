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

const habitListCacheTTL = 5 * time.Minute

// HabitInput carries the writable habit fields.
type HabitInput struct {
	Name       string
	Trigger    string
	Outcome    string
	Routine    string
	CategoryID uint
}

// HabitService exposes habit operations scoped to one user.
type HabitService interface {
	Create(ctx context.Context, userID uint, input HabitInput) (*model.Habit, error)
	Get(ctx context.Context, id, userID uint) (*model.Habit, error)
	List(ctx context.Context, userID uint) ([]model.Habit, error)
	Update(ctx context.Context, id, userID uint, input HabitInput) (*model.Habit, error)
	Delete(ctx context.Context, id, userID uint) error
}

type habitService struct {
	repo         repository.HabitRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
}

// NewHabitService builds a HabitService with repository and cache.
func NewHabitService(repo repository.HabitRepository, categoryRepo repository.CategoryRepository, cache *cache.Client) HabitService {
	return &habitService{repo: repo, categoryRepo: categoryRepo, cache: cache}
}

func (s *habitService) listCacheKey(userID uint) string {
	return fmt.Sprintf("habits:user:%d", userID)
}

// Create adds a habit after checking the category belongs to the same user.
func (s *habitService) Create(ctx context.Context, userID uint, input HabitInput) (*model.Habit, error) {
	if _, err := s.categoryRepo.FindByIDAndUserID(ctx, input.CategoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	habit := &model.Habit{
		Name:       input.Name,
		Trigger:    input.Trigger,
		Outcome:    input.Outcome,
		Routine:    input.Routine,
		UserID:     userID,
		CategoryID: input.CategoryID,
	}
	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return habit, nil
}

func (s *habitService) Get(ctx context.Context, id, userID uint) (*model.Habit, error) {
	habit, err := s.repo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return habit, nil
}

func (s *habitService) List(ctx context.Context, userID uint) ([]model.Habit, error) {
	if data, _ := s.cache.Get(ctx, s.listCacheKey(userID)); data != nil {
		var cached []model.Habit
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	habits, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(habits); err == nil {
		_ = s.cache.Set(ctx, s.listCacheKey(userID), payload, habitListCacheTTL)
	}
	return habits, nil
}

func (s *habitService) Update(ctx context.Context, id, userID uint, input HabitInput) (*model.Habit, error) {
	habit, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != 0 && input.CategoryID != habit.CategoryID {
		if _, err := s.categoryRepo.FindByIDAndUserID(ctx, input.CategoryID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}
		habit.CategoryID = input.CategoryID
	}
	if input.Name != "" {
		habit.Name = input.Name
	}
	if input.Trigger != "" {
		habit.Trigger = input.Trigger
	}
	if input.Outcome != "" {
		habit.Outcome = input.Outcome
	}
	if input.Routine != "" {
		habit.Routine = input.Routine
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("update habit: %w", err)
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return habit, nil
}

func (s *habitService) Delete(ctx context.Context, id, userID uint) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	_ = s.cache.Delete(ctx, s.listCacheKey(userID))
	return nil
}
