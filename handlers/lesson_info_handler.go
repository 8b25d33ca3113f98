package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type lessonInfoTranslationPayload struct {
	LanguageID uint   `json:"language_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
}

type lessonInfoPayload struct {
	LocalImage   *string                         `json:"local_image"`
	ImageURL     *string                         `json:"image_url" validate:"omitempty,url"`
	Order        int                             `json:"order" validate:"gte=0"`
	Translations *[]lessonInfoTranslationPayload `json:"translations" validate:"omitempty,dive"`
}

func ListLessonInfo(c *fiber.Ctx) error {
	var lessons []models.LessonInfo
	if err := database.DB.
		Preload("Translations.Language").
		Scopes(models.DisplayOrdered).
		Find(&lessons).Error; err != nil {
		return err
	}
	return c.JSON(serializers.LessonInfos(lessons, languageParam(c)))
}

func GetLessonInfo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
	}

	var lesson models.LessonInfo
	if err := database.DB.Preload("Translations.Language").First(&lesson, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
		}
		return err
	}
	return c.JSON(serializers.LessonInfo(lesson, languageParam(c)))
}

func CreateLessonInfo(c *fiber.Ctx) error {
	var req lessonInfoPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(lessonInfoLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	lesson := models.LessonInfo{
		LocalImage: req.LocalImage,
		ImageURL:   req.ImageURL,
		Order:      req.Order,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		for _, t := range *req.Translations {
			tr := models.LessonInfoTranslation{
				LessonInfoID: lesson.ID,
				LanguageID:   t.LanguageID,
				Title:        t.Title,
			}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := database.DB.Preload("Translations.Language").First(&lesson, lesson.ID).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.LessonInfo(lesson, nil))
}

func UpdateLessonInfo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
	}

	var lesson models.LessonInfo
	if err := database.DB.First(&lesson, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
		}
		return err
	}

	var req lessonInfoPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(lessonInfoLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	lesson.LocalImage = req.LocalImage
	lesson.ImageURL = req.ImageURL
	lesson.Order = req.Order

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&lesson).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		if err := tx.Where("lesson_info_id = ?", lesson.ID).Delete(&models.LessonInfoTranslation{}).Error; err != nil {
			return err
		}
		for _, t := range *req.Translations {
			tr := models.LessonInfoTranslation{
				LessonInfoID: lesson.ID,
				LanguageID:   t.LanguageID,
				Title:        t.Title,
			}
			if err := tx.Create(&tr).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := database.DB.Preload("Translations.Language").First(&lesson, lesson.ID).Error; err != nil {
		return err
	}
	return c.JSON(serializers.LessonInfo(lesson, nil))
}

func DeleteLessonInfo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
	}

	var lesson models.LessonInfo
	if err := database.DB.First(&lesson, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson info not found"})
		}
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_info_id = ?", lesson.ID).Delete(&models.LessonInfoTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lesson).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func lessonInfoLanguageIDs(ts []lessonInfoTranslationPayload) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.LanguageID)
	}
	return ids
}
