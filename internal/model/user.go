package model

import "time"

// User is the authenticable identity: a unique email address plus a bcrypt
// password hash. Email comparison is byte-exact; addresses are stored exactly
// as given and "User@x.com" and "user@x.com" are distinct accounts.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EmailAddress string    `json:"emailAddress" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Profile      *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Categories []Category        `json:"categories,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Habits     []Habit           `json:"habits,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Practices  []PracticeTracker `json:"practices,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Profile holds the optional personal details owned one-to-one by a User.
// It is created empty at registration and never exists on its own. Fields are
// pointers so an absent value is distinguishable from an empty string.
type Profile struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"-" gorm:"uniqueIndex;not null"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}
