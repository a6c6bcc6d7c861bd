package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
)

// ParseBody decodes the request body into dst and runs its validate tags.
func ParseBody(c *fiber.Ctx, v *validator.Validate, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.InvalidInput(err)
	}
	if err := v.Struct(dst); err != nil {
		return apperr.InvalidInput(err)
	}
	return nil
}
