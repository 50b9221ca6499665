package model

import "time"

// Habit is a tracked behavior described by its cue, routine, and outcome.
type Habit struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Trigger    string    `json:"trigger" gorm:"size:255"`
	Outcome    string    `json:"outcome" gorm:"size:255"`
	Routine    string    `json:"routine" gorm:"size:255"`
	UserID     uint      `json:"-" gorm:"not null;index"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Practices []PracticeTracker `json:"practices,omitempty" gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
}
