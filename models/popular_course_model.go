package models

import "github.com/gekoeducation/geko-api/i18n"

// Yes/no feature flags on courses are stored as strings, matching the values
// the site frontend renders directly.
const (
	StatusYes = "yes"
	StatusNo  = "no"
)

type PopularCourse struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	CategoryID   uint     `gorm:"not null" json:"category_id"`
	Category     Category `json:"category"`
	LocalImage   *string  `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL     *string  `gorm:"size:255" json:"image_url,omitempty"`
	Duration     string   `gorm:"size:50;not null" json:"duration"`
	Certification string  `gorm:"size:10;not null;default:'yes'" json:"certification"`
	Students     string   `gorm:"size:10;not null;default:'yes'" json:"students"`
	StudentGroup string   `gorm:"size:10;not null;default:'yes'" json:"studentGroup"`
	Assessments  string   `gorm:"size:10;not null;default:'yes'" json:"assessments"`
	Order        int      `gorm:"column:order;not null;default:0" json:"order"`

	Translations []PopularCourseTranslation `json:"translations,omitempty"`
}

type PopularCourseTranslation struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	PopularCourseID uint     `gorm:"not null;uniqueIndex:idx_course_language" json:"popular_course_id"`
	LanguageID      uint     `gorm:"not null;uniqueIndex:idx_course_language" json:"language_id"`
	Language        Language `json:"language"`
	Title           string   `gorm:"size:255;not null" json:"title"`
	Lang            string   `gorm:"size:50" json:"lang"`
	Desc            string   `gorm:"type:text" json:"desc"`
}

func (t PopularCourseTranslation) LanguageCode() string { return t.Language.Code }

func (p PopularCourse) Image() *string { return ResolveImage(p.LocalImage, p.ImageURL) }

func (p PopularCourse) Label() string {
	if t := i18n.Resolve(p.Translations, i18n.DefaultLanguage); t != nil {
		return t.Title
	}
	return "No translation available"
}
