package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"habitly/internal/model"
)

// PracticeRepository defines practice-record persistence operations.
type PracticeRepository interface {
	Create(ctx context.Context, practice *model.PracticeTracker) error
	Delete(ctx context.Context, id, userID uint) error
	ListByDate(ctx context.Context, userID uint, date time.Time) ([]model.PracticeTracker, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.PracticeTracker, error)
}

type practiceRepository struct {
	db *gorm.DB
}

// NewPracticeRepository builds a GORM-backed repository.
func NewPracticeRepository(db *gorm.DB) PracticeRepository {
	return &practiceRepository{db: db}
}

func (r *practiceRepository) Create(ctx context.Context, practice *model.PracticeTracker) error {
	return r.db.WithContext(ctx).Create(practice).Error
}

func (r *practiceRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.PracticeTracker{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *practiceRepository) ListByDate(ctx context.Context, userID uint, date time.Time) ([]model.PracticeTracker, error) {
	var practices []model.PracticeTracker
	if err := r.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).Find(&practices).Error; err != nil {
		return nil, err
	}
	return practices, nil
}

func (r *practiceRepository) ListByUserID(ctx context.Context, userID uint) ([]model.PracticeTracker, error) {
	var practices []model.PracticeTracker
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&practices).Error; err != nil {
		return nil, err
	}
	return practices, nil
}
