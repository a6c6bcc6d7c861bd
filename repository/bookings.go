package repository

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/handyhub/models"
)

func (s *GormStore) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

func (s *GormStore) GetCustomerBookingView(ctx context.Context, id string) (*models.CustomerBookingView, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Provider.User").
		Preload("Service").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err)
	}
	view := models.NewCustomerBookingView(booking)
	return &view, nil
}

func (s *GormStore) ListCustomerBookings(ctx context.Context, customerID string) ([]models.CustomerBookingView, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Provider.User").
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.CustomerBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.NewCustomerBookingView(b))
	}
	return views, nil
}

func (s *GormStore) ListProviderBookings(ctx context.Context, providerID string) ([]models.ProviderBookingView, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.ProviderBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.NewProviderBookingView(b))
	}
	return views, nil
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
}

// UpdateBookingStatus is an unconditional write; concurrent updates resolve
// last-write-wins.
func (s *GormStore) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetBooking(ctx, id)
}
