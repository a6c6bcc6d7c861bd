package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/controllers"
	"github.com/meinhoongagan/handyhub/controllers/service"
)

// SetupAuthRoutes covers the session user and provider onboarding.
func SetupAuthRoutes(api fiber.Router, protected fiber.Handler, d Deps) {
	auth := controllers.NewAuthHandler(d.Store)
	profile := service.NewProfileHandler(d.Store)

	api.Get("/auth/user", protected, auth.GetCurrentUser)
	api.Post("/user/type", protected, auth.SetUserType)

	api.Get("/provider/profile", protected, profile.GetProfile)
	api.Post("/provider/profile", protected, profile.CreateProfile)
}
