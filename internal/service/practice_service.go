package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "habitly/internal/errors"
	"habitly/internal/model"
	"habitly/internal/repository"
)

// PracticeService records and lists habit practice history.
type PracticeService interface {
	Record(ctx context.Context, userID, habitID uint, date time.Time) (*model.PracticeTracker, error)
	List(ctx context.Context, userID uint) ([]model.PracticeTracker, error)
	ListByDate(ctx context.Context, userID uint, date time.Time) ([]model.PracticeTracker, error)
	Delete(ctx context.Context, id, userID uint) error
}

type practiceService struct {
	repo      repository.PracticeRepository
	habitRepo repository.HabitRepository
}

// NewPracticeService builds a PracticeService.
func NewPracticeService(repo repository.PracticeRepository, habitRepo repository.HabitRepository) PracticeService {
	return &practiceService{repo: repo, habitRepo: habitRepo}
}

// Record stores one practice of a habit on the given date. The habit must
// belong to the practicing user.
func (s *practiceService) Record(ctx context.Context, userID, habitID uint, date time.Time) (*model.PracticeTracker, error) {
	if _, err := s.habitRepo.FindByIDAndUserID(ctx, habitID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	practice := &model.PracticeTracker{
		Date:    date,
		HabitID: habitID,
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, practice); err != nil {
		return nil, fmt.Errorf("record practice: %w", err)
	}
	return practice, nil
}

func (s *practiceService) List(ctx context.Context, userID uint) ([]model.PracticeTracker, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *practiceService) ListByDate(ctx context.Context, userID uint, date time.Time) ([]model.PracticeTracker, error) {
	return s.repo.ListByDate(ctx, userID, date)
}

func (s *practiceService) Delete(ctx context.Context, id, userID uint) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}
