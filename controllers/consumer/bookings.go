package consumer

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/lifecycle"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
	"github.com/meinhoongagan/handyhub/utils"
)

type BookingStore interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetCustomerBookingView(ctx context.Context, id string) (*models.CustomerBookingView, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.CustomerBookingView, error)
}

type BookingHandler struct {
	store    BookingStore
	engine   *lifecycle.Engine
	validate *validator.Validate
}

func NewBookingHandler(store BookingStore, engine *lifecycle.Engine) *BookingHandler {
	return &BookingHandler{store: store, engine: engine, validate: validator.New()}
}

// ListBookings returns the caller's bookings as a customer. Routed behind
// RequirePermission(access.ListCustomerBookings).
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	bookings, err := h.store.ListCustomerBookings(c.UserContext(), p.User.ID)
	if err != nil {
		return apperr.Unexpected("Failed to fetch bookings", err)
	}
	return c.JSON(bookings)
}

// GetBooking is visible to the booking's customer and its provider.
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	booking, err := h.store.GetBooking(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(lifecycle.MsgBookingNotFound)
	}
	if err != nil {
		return apperr.Unexpected("Failed to fetch booking", err)
	}
	if err := access.Authorize(p, access.ViewBooking, access.Resource{Booking: booking}); err != nil {
		return err
	}

	view, err := h.store.GetCustomerBookingView(c.UserContext(), booking.ID)
	if err != nil {
		return apperr.Unexpected("Failed to fetch booking", err)
	}
	return c.JSON(view)
}

// createBookingRequest has no customerId, providerId or totalPrice: those
// are derived server-side and ignored when sent.
type createBookingRequest struct {
	ServiceID      string       `json:"serviceId" validate:"required"`
	ScheduledDate  string       `json:"scheduledDate" validate:"required"`
	EstimatedHours models.Hours `json:"estimatedHours"`
	Notes          string       `json:"notes"`
	Address        string       `json:"address"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}

	scheduled, err := parseDate(req.ScheduledDate)
	if err != nil {
		return apperr.Validation("Scheduled date must be RFC 3339 or YYYY-MM-DD")
	}

	booking, err := h.engine.Create(c.UserContext(), lifecycle.CreateInput{
		ServiceID:      req.ServiceID,
		ScheduledDate:  scheduled,
		EstimatedHours: req.EstimatedHours,
		Notes:          req.Notes,
		Address:        req.Address,
	}, p)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
