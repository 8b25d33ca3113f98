package models

import (
	"time"

	"github.com/gekoeducation/geko-api/i18n"
)

const (
	EventUpcoming  = "upcoming"
	EventHappening = "happening"
	EventCompleted = "completed"
)

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	Image     *string   `gorm:"size:255" json:"image,omitempty"`
	Status    string    `gorm:"size:20;not null;default:'upcoming'" json:"status"`
	Order     int       `gorm:"column:order;not null;default:0" json:"order"`

	Translations   []EventTranslation `json:"translations,omitempty"`
	EventGalleries []EventGallery     `json:"event_galleries,omitempty"`
}

type EventTranslation struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	EventID     uint     `gorm:"not null;uniqueIndex:idx_event_language" json:"event_id"`
	LanguageID  uint     `gorm:"not null;uniqueIndex:idx_event_language" json:"language_id"`
	Language    Language `json:"language"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"size:255" json:"description"`
	Place       string   `gorm:"size:255" json:"place"`
}

type EventGallery struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	EventID    uint    `gorm:"not null" json:"event"`
	LocalImage *string `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL   *string `gorm:"size:255" json:"image_url,omitempty"`
	Order      int     `gorm:"column:order;not null;default:0" json:"order"`
}

func (t EventTranslation) LanguageCode() string { return t.Language.Code }

func (g EventGallery) Image() *string { return ResolveImage(g.LocalImage, g.ImageURL) }

// DeriveStatus recomputes the lifecycle status from the event dates.
func (e Event) DeriveStatus(now time.Time) string {
	today := now.Truncate(24 * time.Hour)
	switch {
	case today.Before(e.StartDate):
		return EventUpcoming
	case today.After(e.EndDate):
		return EventCompleted
	default:
		return EventHappening
	}
}

// Label is the admin-facing display name; event copy is authored in Amharic
// first, so that is the default here.
func (e Event) Label() string {
	if t := i18n.Resolve(e.Translations, "am"); t != nil {
		return t.Title
	}
	return "No translation available"
}
