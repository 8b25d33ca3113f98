package models

import "github.com/gekoeducation/geko-api/i18n"

type Category struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	LocalImage *string `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL   *string `gorm:"size:255" json:"image_url,omitempty"`
	Order      int     `gorm:"column:order;not null;default:0" json:"order"`

	Translations []CategoryTranslation `json:"translations,omitempty"`
}

type CategoryTranslation struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CategoryID uint     `gorm:"not null;uniqueIndex:idx_category_language" json:"category_id"`
	LanguageID uint     `gorm:"not null;uniqueIndex:idx_category_language" json:"language_id"`
	Language   Language `json:"language"`
	Text       string   `gorm:"size:255;not null" json:"text"`
}

func (t CategoryTranslation) LanguageCode() string { return t.Language.Code }

func (c Category) Image() *string { return ResolveImage(c.LocalImage, c.ImageURL) }

// Label is the admin-facing display name, in English when available.
func (c Category) Label() string {
	if t := i18n.Resolve(c.Translations, i18n.DefaultLanguage); t != nil {
		return t.Text
	}
	return "No translation available"
}
