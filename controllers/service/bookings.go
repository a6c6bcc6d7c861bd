package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/lifecycle"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/utils"
)

type BookingStore interface {
	ListProviderBookings(ctx context.Context, providerID string) ([]models.ProviderBookingView, error)
}

type BookingHandler struct {
	store    BookingStore
	engine   *lifecycle.Engine
	validate *validator.Validate
}

func NewBookingHandler(store BookingStore, engine *lifecycle.Engine) *BookingHandler {
	return &BookingHandler{store: store, engine: engine, validate: validator.New()}
}

// ListBookings is routed behind RequirePermission, so p.Profile is set.
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	bookings, err := h.store.ListProviderBookings(c.UserContext(), p.Profile.ID)
	if err != nil {
		return apperr.Unexpected("Failed to fetch provider bookings", err)
	}
	return c.JSON(bookings)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a booking along pending -> accepted|cancelled and
// accepted -> completed.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}

	booking, err := h.engine.Transition(c.UserContext(), c.Params("id"), req.Status, p)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}
