package handlers

import (
	"errors"
	"fmt"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/models"
	"github.com/gekoeducation/geko-api/notifications"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type contactRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Whatsapp string `json:"whatsapp" validate:"required"`
	Category *uint  `json:"category"`
}

// SubmitContactForm persists the message first, then sends the staff
// notification and the sender acknowledgment. A failed send never rolls the
// stored message back; it only changes the response.
func SubmitContactForm(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
	}

	var categoryLabel string
	if req.Category != nil {
		var category models.Category
		if err := database.DB.Preload("Translations.Language").First(&category, *req.Category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"category": "Invalid category id"})
			}
			return err
		}
		categoryLabel = category.Label()
	}

	message := models.ContactMessage{
		FullName:   req.FullName,
		Email:      req.Email,
		Message:    req.Message,
		Country:    req.Country,
		Whatsapp:   req.Whatsapp,
		CategoryID: req.Category,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return err
	}

	if categoryLabel == "" {
		categoryLabel = "N/A"
	}
	staffBody := fmt.Sprintf(
		"Name: %s\nEmail: %s\nMessage: %s\nCountry: %s\nWhatsApp: %s\nCategory: %s",
		req.FullName, req.Email, req.Message, req.Country, req.Whatsapp, categoryLabel,
	)
	ackBody := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for contacting us! We have received your message and will get back to you soon.\n\n"+
			"Your message:\n%s\n\n"+
			"Best regards,\nGeko Education",
		req.FullName, req.Message,
	)

	if err := mailer.Send(cfg.ContactRecipient, "New Contact Message", staffBody); err != nil {
		return notificationError(c, err)
	}
	if err := mailer.Send(req.Email, "Thank you for contacting us!", ackBody); err != nil {
		return notificationError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Email sent successfully and message saved!"})
}

func notificationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, notifications.ErrBadHeader) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid header found in the email."})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fmt.Sprintf("An error occurred while sending the email: %v", err),
	})
}

// ListContactMessages is the admin view over inbound messages. The public
// surface stays append-only.
func ListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.DB.Order("id desc").Find(&messages).Error; err != nil {
		return err
	}
	return c.JSON(messages)
}
