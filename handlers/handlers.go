package handlers

import (
	"reflect"
	"strings"

	config "github.com/gekoeducation/geko-api/configs"
	"github.com/gekoeducation/geko-api/notifications"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	validate = validator.New()

	cfg    *config.Config
	mailer notifications.Sender
)

func init() {
	// Report validation errors under the JSON field names the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Setup wires the handlers to the process-wide configuration and the
// outbound mail transport. Called once from main.
func Setup(c *config.Config, m notifications.Sender) {
	cfg = c
	mailer = m
}

// languageParam reads the optional ?language= query parameter. nil means the
// caller wants the full translation set.
func languageParam(c *fiber.Ctx) *string {
	if lang := c.Query("language"); lang != "" {
		return &lang
	}
	return nil
}

// fieldErrors flattens validator output into a field -> message map.
func fieldErrors(err error) fiber.Map {
	out := fiber.Map{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "This field is required."
			case "email":
				out[fe.Field()] = "Enter a valid email address."
			case "url":
				out[fe.Field()] = "Enter a valid URL."
			default:
				out[fe.Field()] = "This value is invalid."
			}
		}
		return out
	}
	out["error"] = err.Error()
	return out
}
