package models

import "github.com/gekoeducation/geko-api/i18n"

type LessonInfo struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	LocalImage *string `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL   *string `gorm:"size:255" json:"image_url,omitempty"`
	Order      int     `gorm:"column:order;not null;default:0" json:"order"`

	Translations []LessonInfoTranslation `json:"translations,omitempty"`
}

type LessonInfoTranslation struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	LessonInfoID uint     `gorm:"not null;uniqueIndex:idx_lesson_info_language" json:"lesson_info_id"`
	LanguageID   uint     `gorm:"not null;uniqueIndex:idx_lesson_info_language" json:"language_id"`
	Language     Language `json:"language"`
	Title        string   `gorm:"size:255;not null" json:"title"`
}

func (t LessonInfoTranslation) LanguageCode() string { return t.Language.Code }

func (l LessonInfo) Image() *string { return ResolveImage(l.LocalImage, l.ImageURL) }

func (l LessonInfo) Label() string {
	if t := i18n.Resolve(l.Translations, i18n.DefaultLanguage); t != nil {
		return t.Title
	}
	return "No translation available"
}
