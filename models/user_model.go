package models

import "time"

// User exists only for the seeded administrator account.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FullName  string `gorm:"size:255;not null" json:"full_name"`
	Email     string `gorm:"size:255;not null;unique" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:20;not null;default:'admin'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
