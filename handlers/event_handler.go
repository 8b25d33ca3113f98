package handlers

import (
	"errors"
	"time"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type eventTranslationPayload struct {
	LanguageID  uint   `json:"language_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Place       string `json:"place"`
}

type eventGalleryPayload struct {
	LocalImage *string `json:"local_image"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
	Order      int     `json:"order" validate:"gte=0"`
}

type eventPayload struct {
	StartDate    string                     `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string                     `json:"end_date" validate:"required,datetime=2006-01-02"`
	Image        *string                    `json:"image"`
	Status       string                     `json:"status" validate:"omitempty,oneof=upcoming happening completed"`
	Order        int                        `json:"order" validate:"gte=0"`
	Translations *[]eventTranslationPayload `json:"translations" validate:"omitempty,dive"`
	Galleries    *[]eventGalleryPayload     `json:"event_galleries" validate:"omitempty,dive"`
}

func eventQuery() *gorm.DB {
	return database.DB.
		Preload("Translations.Language").
		Preload("EventGalleries", models.DisplayOrdered)
}

func ListEvents(c *fiber.Ctx) error {
	var events []models.Event
	if err := eventQuery().Scopes(models.DisplayOrdered).Find(&events).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Events(events, languageParam(c)))
}

func GetEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	var event models.Event
	if err := eventQuery().First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		return err
	}
	return c.JSON(serializers.Event(event, languageParam(c)))
}

func CreateEvent(c *fiber.Ctx) error {
	var req eventPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(eventLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date is before start_date"})
	}

	event := models.Event{
		StartDate: startDate,
		EndDate:   endDate,
		Image:     req.Image,
		Status:    req.Status,
		Order:     req.Order,
	}
	if event.Status == "" {
		event.Status = event.DeriveStatus(time.Now())
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		if req.Translations != nil {
			for _, t := range *req.Translations {
				tr := models.EventTranslation{
					EventID:     event.ID,
					LanguageID:  t.LanguageID,
					Title:       t.Title,
					Description: t.Description,
					Place:       t.Place,
				}
				if err := tx.Create(&tr).Error; err != nil {
					return err
				}
			}
		}
		if req.Galleries != nil {
			for _, g := range *req.Galleries {
				gallery := models.EventGallery{
					EventID:    event.ID,
					LocalImage: g.LocalImage,
					ImageURL:   g.ImageURL,
					Order:      g.Order,
				}
				if err := tx.Create(&gallery).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := eventQuery().First(&event, event.ID).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Event(event, nil))
}

func UpdateEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		return err
	}

	var req eventPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(eventLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date is before start_date"})
	}

	event.StartDate = startDate
	event.EndDate = endDate
	event.Image = req.Image
	event.Order = req.Order
	if req.Status != "" {
		event.Status = req.Status
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		if req.Translations != nil {
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventTranslation{}).Error; err != nil {
				return err
			}
			for _, t := range *req.Translations {
				tr := models.EventTranslation{
					EventID:     event.ID,
					LanguageID:  t.LanguageID,
					Title:       t.Title,
					Description: t.Description,
					Place:       t.Place,
				}
				if err := tx.Create(&tr).Error; err != nil {
					return err
				}
			}
		}
		if req.Galleries != nil {
			if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventGallery{}).Error; err != nil {
				return err
			}
			for _, g := range *req.Galleries {
				gallery := models.EventGallery{
					EventID:    event.ID,
					LocalImage: g.LocalImage,
					ImageURL:   g.ImageURL,
					Order:      g.Order,
				}
				if err := tx.Create(&gallery).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := eventQuery().First(&event, event.ID).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Event(event, nil))
}

func DeleteEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventTranslation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventGallery{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func eventLanguageIDs(ts []eventTranslationPayload) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.LanguageID)
	}
	return ids
}
