package model

import "time"

// PracticeTracker records one day's practice of a habit.
type PracticeTracker struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index"`
	HabitID   uint      `json:"habit_id" gorm:"not null;index"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
