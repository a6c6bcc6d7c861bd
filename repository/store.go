// Package repository is the persistence boundary of the marketplace. It owns
// every query, including the joined read views served by the listing
// endpoints.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/meinhoongagan/handyhub/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// ServiceFilter narrows the public service listing. Zero value lists everything.
type ServiceFilter struct {
	Category string
	Query    string
}

type Store interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateUserRole(ctx context.Context, id string, role models.Role) (*models.User, error)

	GetProviderProfileByUser(ctx context.Context, userID string) (*models.ProviderProfile, error)
	GetProviderProfile(ctx context.Context, id string) (*models.ProviderProfile, error)
	CreateProviderProfile(ctx context.Context, profile *models.ProviderProfile) error

	ListServiceViews(ctx context.Context, filter ServiceFilter) ([]models.ServiceView, error)
	GetServiceView(ctx context.Context, id string) (*models.ServiceView, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateServiceImage(ctx context.Context, id, imageURL string) (*models.Service, error)

	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetCustomerBookingView(ctx context.Context, id string) (*models.CustomerBookingView, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.CustomerBookingView, error)
	ListProviderBookings(ctx context.Context, providerID string) ([]models.ProviderBookingView, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)

	UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID string) (*models.Payment, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

// duplicate needs TranslateError on the gorm config.
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
