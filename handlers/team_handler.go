package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type teamTranslationPayload struct {
	LanguageID uint   `json:"language_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role"`
	Desc       string `json:"desc"`
}

type teamPayload struct {
	LocalImage   *string                   `json:"local_image"`
	ImageURL     *string                   `json:"image_url" validate:"omitempty,url"`
	Order        int                       `json:"order" validate:"gte=0"`
	Translations *[]teamTranslationPayload `json:"translations" validate:"omitempty,dive"`
}

func ListTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := database.DB.
		Preload("Translations.Language").
		Scopes(models.DisplayOrdered).
		Find(&teams).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Teams(teams, languageParam(c)))
}

func GetTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
	}

	var team models.Team
	if err := database.DB.Preload("Translations.Language").First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		}
		return err
	}
	return c.JSON(serializers.Team(team, languageParam(c)))
}

func CreateTeam(c *fiber.Ctx) error {
	var req teamPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(teamLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	team := models.Team{
		LocalImage: req.LocalImage,
		ImageURL:   req.ImageURL,
		Order:      req.Order,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		for _, t := range *req.Translations {
			tr := models.TeamTranslation{
				TeamID:     team.ID,
				LanguageID: t.LanguageID,
				Name:       t.Name,
				Role:       t.Role,
				Desc:       t.Desc,
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

	if err := database.DB.Preload("Translations.Language").First(&team, team.ID).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Team(team, nil))
}

func UpdateTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
	}

	var team models.Team
	if err := database.DB.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		}
		return err
	}

	var req teamPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}
	if req.Translations != nil {
		if msg := translationLanguageError(teamLanguageIDs(*req.Translations)); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
		}
	}

	team.LocalImage = req.LocalImage
	team.ImageURL = req.ImageURL
	team.Order = req.Order

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&team).Error; err != nil {
			return err
		}
		if req.Translations == nil {
			return nil
		}
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamTranslation{}).Error; err != nil {
			return err
		}
		for _, t := range *req.Translations {
			tr := models.TeamTranslation{
				TeamID:     team.ID,
				LanguageID: t.LanguageID,
				Name:       t.Name,
				Role:       t.Role,
				Desc:       t.Desc,
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

	if err := database.DB.Preload("Translations.Language").First(&team, team.ID).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Team(team, nil))
}

func DeleteTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
	}

	var team models.Team
	if err := database.DB.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Team member not found"})
		}
		return err
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamTranslation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func teamLanguageIDs(ts []teamTranslationPayload) []uint {
	ids := make([]uint, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.LanguageID)
	}
	return ids
}
