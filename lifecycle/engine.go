// Package lifecycle creates bookings and moves them through their status
// machine: pending, then accepted or cancelled, then completed.
package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
)

const (
	MsgServiceNotFound = "Service not found"
	MsgBookingNotFound = "Booking not found"
	MsgStatusRequired  = "Status is required"
)

// Store is the slice of the repository the engine writes through.
type Store interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
}

// CreateInput is a booking request as accepted from a customer. It has no
// customer, provider or price fields; those are derived.
type CreateInput struct {
	ServiceID      string
	ScheduledDate  time.Time
	EstimatedHours models.Hours
	Notes          string
	Address        string
}

type Engine struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewEngine(store Store, notifier Notifier) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Engine{store: store, notifier: notifier, now: time.Now}
}

// WithClock replaces the clock used for the scheduled date check.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Create books in.ServiceID for the calling customer.
func (e *Engine) Create(ctx context.Context, in CreateInput, p access.Principal) (*models.Booking, error) {
	if err := access.Authorize(p, access.CreateBooking, access.Resource{}); err != nil {
		return nil, err
	}

	if in.ServiceID == "" {
		return nil, apperr.Validation("Service id is required")
	}
	if !in.EstimatedHours.InRange() {
		return nil, apperr.Validation("Estimated hours must be between 0.1 and 999.9")
	}
	if in.ScheduledDate.IsZero() {
		return nil, apperr.Validation("Scheduled date is required")
	}
	if in.ScheduledDate.Before(earliestToday(e.now())) {
		return nil, apperr.Validation("Scheduled date cannot be in the past")
	}

	service, err := e.store.GetService(ctx, in.ServiceID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(MsgServiceNotFound)
	}
	if err != nil {
		return nil, apperr.Unexpected("Failed to create booking", err)
	}

	booking := &models.Booking{
		CustomerID:     p.User.ID,
		ProviderID:     service.ProviderID,
		ServiceID:      service.ID,
		ScheduledDate:  in.ScheduledDate.UTC(),
		Status:         models.StatusPending,
		EstimatedHours: in.EstimatedHours,
		TotalPrice:     service.PricePerHour.Times(in.EstimatedHours),
		Notes:          in.Notes,
		Address:        in.Address,
	}

	if err := e.store.CreateBooking(ctx, booking); err != nil {
		return nil, apperr.Unexpected("Failed to create booking", err)
	}

	e.notifier.BookingCreated(ctx, booking)
	return booking, nil
}

// Transition moves a booking to status on behalf of its provider.
func (e *Engine) Transition(ctx context.Context, bookingID, status string, p access.Principal) (*models.Booking, error) {
	if status == "" {
		return nil, apperr.Validation(MsgStatusRequired)
	}

	booking, err := e.store.GetBooking(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(MsgBookingNotFound)
	}
	if err != nil {
		return nil, apperr.Unexpected("Failed to update booking", err)
	}

	if err := access.Authorize(p, access.UpdateBookingStatus, access.Resource{Booking: booking}); err != nil {
		return nil, err
	}

	next, ok := models.ParseBookingStatus(status)
	if !ok {
		return nil, apperr.Validationf("Invalid status: %s", status)
	}
	if err := booking.Status.CheckTransition(next); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	updated, err := e.store.UpdateBookingStatus(ctx, booking.ID, next)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound(MsgBookingNotFound)
	}
	if err != nil {
		return nil, apperr.Unexpected("Failed to update booking", err)
	}

	e.notifier.BookingStatusChanged(ctx, updated)
	return updated, nil
}

// earliestToday is midnight UTC of the oldest calendar date still current
// somewhere (UTC-12). Date-only values arrive as UTC midnight of the
// caller's local date, so "today" west of UTC must pass.
func earliestToday(now time.Time) time.Time {
	t := now.UTC().Add(-12 * time.Hour)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
