package serializers

import (
	"github.com/gekoeducation/geko-api/i18n"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

type LanguageResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CategoryTranslationResponse struct {
	Language LanguageResponse `json:"language"`
	Text     string           `json:"text"`
}

type PopularCourseTranslationResponse struct {
	Language LanguageResponse `json:"language"`
	Lang     string           `json:"lang"`
	Title    string           `json:"title"`
	Desc     string           `json:"desc"`
}

type EventTranslationResponse struct {
	Language    LanguageResponse `json:"language"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Place       string           `json:"place"`
}

type TeamTranslationResponse struct {
	Language LanguageResponse `json:"language"`
	Name     string           `json:"name"`
	Role     string           `json:"role"`
	Desc     string           `json:"desc"`
}

type LessonInfoTranslationResponse struct {
	Language LanguageResponse `json:"language"`
	Title    string           `json:"title"`
}

func NewLanguage(l models.Language) LanguageResponse {
	return LanguageResponse{Code: l.Code, Name: l.Name}
}

func NewCategoryTranslation(t models.CategoryTranslation) CategoryTranslationResponse {
	return CategoryTranslationResponse{Language: NewLanguage(t.Language), Text: t.Text}
}

func NewPopularCourseTranslation(t models.PopularCourseTranslation) PopularCourseTranslationResponse {
	return PopularCourseTranslationResponse{Language: NewLanguage(t.Language), Lang: t.Lang, Title: t.Title, Desc: t.Desc}
}

func NewEventTranslation(t models.EventTranslation) EventTranslationResponse {
	return EventTranslationResponse{Language: NewLanguage(t.Language), Title: t.Title, Description: t.Description, Place: t.Place}
}

func NewTeamTranslation(t models.TeamTranslation) TeamTranslationResponse {
	return TeamTranslationResponse{Language: NewLanguage(t.Language), Name: t.Name, Role: t.Role, Desc: t.Desc}
}

func NewLessonInfoTranslation(t models.LessonInfoTranslation) LessonInfoTranslationResponse {
	return LessonInfoTranslationResponse{Language: NewLanguage(t.Language), Title: t.Title}
}

// Localize finishes a translated-entity response. With a language code the
// resolved bundle (or explicit null) goes under "translation" and the full
// set is left out entirely; without one the full set goes under
// "translations" and no "translation" key appears.
func Localize[M i18n.Localized, R any](resp fiber.Map, set []M, convert func(M) R, language *string) fiber.Map {
	if language == nil {
		out := make([]R, 0, len(set))
		for _, t := range set {
			out = append(out, convert(t))
		}
		resp["translations"] = out
		return resp
	}

	if match := i18n.Resolve(set, *language); match != nil {
		resp["translation"] = convert(*match)
	} else {
		resp["translation"] = nil
	}
	return resp
}
