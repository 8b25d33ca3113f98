package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type categoryTranslationPayload struct {
	LanguageID uint   `json:"language_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
}

type categoryPayload struct {
	LocalImage   *string                       `json:"local_image"`
	ImageURL     *string                       `json:"image_url" validate:"omitempty,url"`
	Order        int                           `json:"order" validate:"gte=0"`
	Translations *[]categoryTranslationPayload `json:"translations" validate:"omitempty,dive"`
}

func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.
		Preload("Translations.Language").
		Scopes(models.DisplayOrdered).
		Find(&categories).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Categories(categories, languageParam(c)))
}

func GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var category models.Category
	if err := database.DB.
		Preload("Translations.Language").
		First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return err
	}
	return c.JSON(serializers.Category(category, languageParam(c)))
}

func CreateCategory(c *fiber.Ctx) error {
	var req categoryPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(categoryLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	category := models.Category{
		LocalImage: req.LocalImage,
		ImageURL:   req.ImageURL,
		Order:      req.Order,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		for _, t := range *req.Translations {
			tr := models.CategoryTranslation{CategoryID: category.ID, LanguageID: t.LanguageID, Text: t.Text}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := database.DB.Preload("Translations.Language").First(&category, category.ID).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Category(category, nil))
}

func UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return err
	}

	var req categoryPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(categoryLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	category.LocalImage = req.LocalImage
	category.ImageURL = req.ImageURL
	category.Order = req.Order

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&category).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		for _, t := range *req.Translations {
			tr := models.CategoryTranslation{CategoryID: category.ID, LanguageID: t.LanguageID, Text: t.Text}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := database.DB.Preload("Translations.Language").First(&category, category.ID).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Category(category, nil))
}

// DeleteCategory cascades in the application layer: translations and the
// category's courses go with it, contact messages only lose the reference.
func DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ContactMessage{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		var courses []models.PopularCourse
		if err := tx.Where("category_id = ?", category.ID).Find(&courses).Error; err != nil {
			return err
		}
		for _, course := range courses {
			if err := tx.Where("popular_course_id = ?", course.ID).
				Delete(&models.PopularCourseTranslation{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.PopularCourse{}).Error; err != nil {
			return err
		}

		if err := tx.Where("category_id = ?", category.ID).Delete(&models.CategoryTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func categoryLanguageIDs(ts []categoryTranslationPayload) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.LanguageID)
	}
	return ids
}

// translationLanguageError enforces the one-translation-per-language
// invariant at the edge and checks the referenced languages exist.
func translationLanguageError(ids []uint) string {
	if len(ids) == 0 {
		return ""
	}
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return "Duplicate translation for language"
		}
		seen[id] = true
	}

	var count int64
	if err := database.DB.Model(&models.Language{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return "Failed to verify languages"
	}
	if int(count) != len(ids) {
		return "Invalid language id"
	}
	return ""
}
