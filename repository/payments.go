package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/handyhub/models"
)

// UpsertPayment keeps one payment row per booking. Initiating payment again
// replaces the amount and processor reference of the existing row.
func (s *GormStore) UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "status", "stripe_payment_intent_id", "paid_at"}),
		}).
		Create(payment).Error
	if err != nil {
		return nil, err
	}

	return s.GetPaymentByBooking(ctx, payment.BookingID)
}

func (s *GormStore) GetPaymentByBooking(ctx context.Context, bookingID string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, "booking_id = ?", bookingID).Error; err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}
