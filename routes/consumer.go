package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/controllers/consumer"
	"github.com/meinhoongagan/handyhub/middleware"
)

// SetupConsumerRoutes configures booking and payment routes used by customers.
func SetupConsumerRoutes(api fiber.Router, protected fiber.Handler, d Deps) {
	bookings := consumer.NewBookingHandler(d.Store, d.Engine)
	payment := consumer.NewPaymentHandler(d.Bridge)

	api.Get("/bookings", protected, middleware.RequirePermission(access.ListCustomerBookings), bookings.ListBookings)
	api.Get("/bookings/:id", protected, bookings.GetBooking)
	api.Post("/bookings", protected, bookings.CreateBooking)

	api.Post("/create-payment-intent", protected, payment.CreatePaymentIntent)
}
