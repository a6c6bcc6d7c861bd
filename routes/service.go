package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/controllers"
	"github.com/meinhoongagan/handyhub/controllers/service"
	"github.com/meinhoongagan/handyhub/middleware"
)

// SetupServiceRoutes wires the public catalog and the provider workspace.
func SetupServiceRoutes(api fiber.Router, protected fiber.Handler, d Deps) {
	catalog := controllers.NewCatalogHandler(d.Store)
	services := service.NewServiceHandler(d.Store, d.Uploader)
	bookings := service.NewBookingHandler(d.Store, d.Engine)

	api.Get("/services", catalog.ListServices)
	api.Get("/services/:id", catalog.GetService)
	api.Post("/services", protected, middleware.RequirePermission(access.CreateService), services.CreateService)

	provider := api.Group("/provider")
	provider.Get("/services", protected, middleware.RequirePermission(access.ListProviderServices), services.ListServices)
	provider.Post("/services", protected, middleware.RequirePermission(access.CreateService), services.CreateService)
	provider.Post("/services/:id/image", protected, services.UploadImage)
	provider.Get("/bookings", protected, middleware.RequirePermission(access.ListProviderBookings), bookings.ListBookings)

	api.Patch("/bookings/:id", protected, bookings.UpdateStatus)
}
