package repository

import (
	"context"

	"gorm.io/gorm"

	"habitly/internal/model"
)

// HabitRepository defines habit persistence operations.
type HabitRepository interface {
	Create(ctx context.Context, habit *model.Habit) error
	Update(ctx context.Context, habit *model.Habit) error
	Delete(ctx context.Context, id, userID uint) error
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Habit, error)
	FindByName(ctx context.Context, name string) (*model.Habit, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Habit, error)
}

type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository builds a GORM-backed repository.
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *model.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *habitRepository) Update(ctx context.Context, habit *model.Habit) error {
	return r.db.WithContext(ctx).Save(habit).Error
}

func (r *habitRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Habit{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *habitRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Habit, error) {
	var habit model.Habit
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepository) FindByName(ctx context.Context, name string) (*model.Habit, error) {
	var habit model.Habit
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Habit, error) {
	var habits []model.Habit
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
