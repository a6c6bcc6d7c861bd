package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/utils"
)

// ErrorHandler is the single place where handler errors become responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(utils.ErrorResponse{Message: fe.Message})
	}

	kind := apperr.KindOf(err)
	if kind == apperr.KindUnexpected {
		slog.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", c.Locals("requestid"),
			"error", err,
		)
	}

	return c.Status(kind.Status()).JSON(utils.ErrorResponse{
		Message: apperr.Message(err),
		Error:   apperr.Detail(err),
	})
}
