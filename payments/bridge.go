package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
)

const (
	MsgNotConfigured   = "Payment system not configured"
	MsgBookingNotFound = "Booking not found"
)

var hundred = decimal.NewFromInt(100)

type Store interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

type Bridge struct {
	store     Store
	processor Processor
	currency  string
}

// NewBridge returns a bridge. A nil processor makes every call fail as
// unconfigured.
func NewBridge(store Store, processor Processor, currency string) *Bridge {
	if currency == "" {
		currency = "usd"
	}
	return &Bridge{store: store, processor: processor, currency: currency}
}

// Configured reports whether a processor is available.
func (b *Bridge) Configured() bool { return b.processor != nil }

// InitiatePayment creates a payment intent for the booking's stored total and
// returns the client secret. Any amount the client sent is ignored.
func (b *Bridge) InitiatePayment(ctx context.Context, bookingID string, p access.Principal) (string, error) {
	if !b.Configured() {
		return "", apperr.Unconfigured(MsgNotConfigured)
	}

	booking, err := b.store.GetBooking(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", apperr.NotFound(MsgBookingNotFound)
	}
	if err != nil {
		return "", apperr.Unexpected("Error creating payment intent", err)
	}

	if err := access.Authorize(p, access.PayBooking, access.Resource{Booking: booking}); err != nil {
		return "", err
	}

	intent, err := b.processor.CreatePaymentIntent(ctx, IntentRequest{
		Amount:   ToMinorUnits(booking.TotalPrice),
		Currency: b.currency,
		Metadata: map[string]string{
			"bookingId":  booking.ID,
			"customerId": p.User.ID,
		},
	})
	if err != nil {
		return "", apperr.Unexpected("Error creating payment intent", err)
	}

	_, err = b.store.UpsertPayment(ctx, &models.Payment{
		BookingID:   booking.ID,
		Amount:      booking.TotalPrice,
		Status:      models.PaymentPending,
		ExternalRef: intent.ID,
	})
	if err != nil {
		return "", apperr.Unexpected("Error creating payment intent", err)
	}

	return intent.ClientSecret, nil
}
