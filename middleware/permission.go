package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/access"
)

// RequirePermission rejects callers who may not perform action at all. It
// only fits actions that need no resource, such as listing or creating; per
// booking and per service checks stay in the handlers.
func RequirePermission(action access.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := CurrentPrincipal(c)
		if err != nil {
			return err
		}
		if err := access.Authorize(p, action, access.Resource{}); err != nil {
			return err
		}
		return c.Next()
	}
}
