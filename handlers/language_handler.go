package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type languagePayload struct {
	Code string `json:"code" validate:"required,max=10"`
	Name string `json:"name" validate:"required,max=50"`
}

func ListLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := database.DB.Order("id").Find(&languages).Error; err != nil {
		return err
	}

	out := make([]serializers.LanguageResponse, 0, len(languages))
	for _, l := range languages {
		out = append(out, serializers.NewLanguage(l))
	}
	return c.JSON(out)
}

func CreateLanguage(c *fiber.Ctx) error {
	var req languagePayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}

	language := models.Language{Code: req.Code, Name: req.Name}
	if err := database.DB.Create(&language).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Language code already exists"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(language)
}

// DeleteLanguage refuses to remove a language that translations still
// reference; languages are reference data, not cascading parents.
func DeleteLanguage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Language not found"})
	}

	var language models.Language
	if err := database.DB.First(&language, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Language not found"})
		}
		return err
	}

	referencing := []any{
		&models.CategoryTranslation{},
		&models.PopularCourseTranslation{},
		&models.EventTranslation{},
		&models.TeamTranslation{},
		&models.LessonInfoTranslation{},
	}
	for _, model := range referencing {
		var count int64
		if err := database.DB.Model(model).Where("language_id = ?", language.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Language is still referenced by translations"})
		}
	}

	if err := database.DB.Delete(&language).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
