package models

import "github.com/gekoeducation/geko-api/i18n"

type Team struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	LocalImage *string `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL   *string `gorm:"size:255" json:"image_url,omitempty"`
	Order      int     `gorm:"column:order;not null;default:0" json:"order"`

	Translations []TeamTranslation `json:"translations,omitempty"`
}

type TeamTranslation struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	TeamID     uint     `gorm:"not null;uniqueIndex:idx_team_language" json:"team_id"`
	LanguageID uint     `gorm:"not null;uniqueIndex:idx_team_language" json:"language_id"`
	Language   Language `json:"language"`
	Name       string   `gorm:"size:255;not null" json:"name"`
	Role       string   `gorm:"size:255" json:"role"`
	Desc       string   `gorm:"type:text" json:"desc"`
}

func (t TeamTranslation) LanguageCode() string { return t.Language.Code }

func (m Team) Image() *string { return ResolveImage(m.LocalImage, m.ImageURL) }

func (m Team) Label() string {
	if t := i18n.Resolve(m.Translations, i18n.DefaultLanguage); t != nil {
		return t.Name
	}
	return "No translation available"
}
