package model

import "time"

// Category groups a user's habits, e.g. "Morning Routine".
// Names are unique per user, enforced by a composite unique index.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_category_user_name"`
	Description string    `json:"description" gorm:"size:500"`
	UserID      uint      `json:"-" gorm:"not null;uniqueIndex:idx_category_user_name;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Habits []Habit `json:"habits,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
