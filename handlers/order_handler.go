package handlers

import (
	"errors"
	"fmt"

	"github.com/gekoeducation/geko-api/database"
	"github.com/gekoeducation/geko-api/ordering"
	"github.com/gofiber/fiber/v2"
)

type updateOrderRequest struct {
	Order []uint `json:"order" validate:"required"`
}

// UpdateOrderFor builds the bulk-reorder handler for one orderable entity.
// The position of each id in the request body becomes its order value; an id
// matching no row rejects the whole request and nothing changes.
func UpdateOrderFor(model any, entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateOrderRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrors(err))
		}

		if err := ordering.Apply(database.DB, model, req.Order); err != nil {
			var unknown *ordering.UnknownIDError
			if errors.As(err, &unknown) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Invalid %s id", entity),
				})
			}
			return err
		}

		return c.JSON(fiber.Map{"status": "order updated"})
	}
}
