package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records a payment intent created for a booking. Amount is copied
// from the booking, never from the request.
type Payment struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BookingID   string        `json:"bookingId" gorm:"type:varchar(36);not null;uniqueIndex"`
	Booking     Booking       `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Amount      Money         `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status      PaymentStatus `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	ExternalRef string        `json:"stripePaymentIntentId" gorm:"column:stripe_payment_intent_id"`
	PaidAt      *time.Time    `json:"paidAt"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = PaymentPending
	}
	return nil
}
