package handlers

import (
	"errors"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/serializers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type reviewPayload struct {
	LocalImage *string `json:"local_image"`
	ImageURL   *string `json:"image_url" validate:"omitempty,url"`
	Name       string  `json:"name" validate:"required"`
	Comment    string  `json:"comment" validate:"required"`
}

func ListReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.DB.Order("id").Find(&reviews).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Reviews(reviews))
}

func GetReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return err
	}
	return c.JSON(serializers.Review(review))
}

func CreateReview(c *fiber.Ctx) error {
	var req reviewPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}

	review := models.Review{
		LocalImage: req.LocalImage,
		ImageURL:   req.ImageURL,
		Name:       req.Name,
		Comment:    req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(serializers.Review(review))
}

func UpdateReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return err
	}

	var req reviewPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}

	review.LocalImage = req.LocalImage
	review.ImageURL = req.ImageURL
	review.Name = req.Name
	review.Comment = req.Comment
	if err := database.DB.Save(&review).Error; err != nil {
		return err
	}
	return c.JSON(serializers.Review(review))
}

func DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		return err
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
