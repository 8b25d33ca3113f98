package models

import "time"

// ContactMessage is append-only from the public surface. The category link is
// nulled, not cascaded, when the category goes away.
type ContactMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"size:255;not null" json:"full_name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Country    string    `gorm:"size:255;not null" json:"country"`
	Whatsapp   string    `gorm:"size:20;not null" json:"whatsapp"`
	CategoryID *uint     `json:"category"`
	Category   *Category `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
