package access

import (
	"fmt"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/models"
)

type Action int

const (
	ViewBooking Action = iota
	ListCustomerBookings
	ListProviderBookings
	ListProviderServices
	UpdateBookingStatus
	CreateService
	ManageService
	CreateBooking
	PayBooking
)

var actionNames = map[Action]string{
	ViewBooking:          "view_booking",
	ListCustomerBookings: "list_customer_bookings",
	ListProviderBookings: "list_provider_bookings",
	ListProviderServices: "list_provider_services",
	UpdateBookingStatus:  "update_booking_status",
	CreateService:        "create_service",
	ManageService:        "manage_service",
	CreateBooking:        "create_booking",
	PayBooking:           "pay_booking",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Resource is the object an action targets. Only the field relevant to the
// action needs to be set.
type Resource struct {
	Booking *models.Booking
	Service *models.Service
}

const (
	MsgProfileNotFound  = "Provider profile not found"
	MsgProvidersListOwn = "Providers should use /api/provider/bookings"
	MsgProvidersNoBook  = "Providers cannot create bookings"
	MsgViewBooking      = "Unauthorized to view this booking"
	MsgUpdateBooking    = "Unauthorized to update this booking"
	MsgPayBooking       = "Unauthorized to pay for this booking"
	MsgManageService    = "Unauthorized to manage this service"
	msgMissingResource  = "missing resource for %s"
	msgUnknownAction    = "unknown action %s"
)

// Authorize returns nil when p may perform a on r, otherwise an apperr error
// carrying the denial reason.
func Authorize(p Principal, a Action, r Resource) error {
	id := p.Identity()

	switch a {
	case ViewBooking:
		b, err := needBooking(a, r)
		if err != nil {
			return err
		}
		if id.UserID() == b.CustomerID || owns(id, b.ProviderID) {
			return nil
		}
		return apperr.Forbidden(MsgViewBooking)

	case ListCustomerBookings:
		if _, ok := id.(ProviderIdentity); ok {
			return apperr.Forbidden(MsgProvidersListOwn)
		}
		return nil

	case ListProviderBookings, ListProviderServices, CreateService:
		_, err := needProfile(id)
		return err

	case UpdateBookingStatus:
		b, err := needBooking(a, r)
		if err != nil {
			return err
		}
		if owns(id, b.ProviderID) {
			return nil
		}
		return apperr.Forbidden(MsgUpdateBooking)

	case ManageService:
		profile, err := needProfile(id)
		if err != nil {
			return err
		}
		if r.Service == nil {
			return apperr.Unexpected("Authorization failed", fmt.Errorf(msgMissingResource, a))
		}
		if r.Service.ProviderID != profile.ID {
			return apperr.Forbidden(MsgManageService)
		}
		return nil

	case CreateBooking:
		if _, ok := id.(ProviderIdentity); ok {
			return apperr.Forbidden(MsgProvidersNoBook)
		}
		return nil

	case PayBooking:
		b, err := needBooking(a, r)
		if err != nil {
			return err
		}
		if id.UserID() == b.CustomerID {
			return nil
		}
		return apperr.Forbidden(MsgPayBooking)
	}
	return apperr.Unexpected("Authorization failed", fmt.Errorf(msgUnknownAction, a))
}

func owns(id Identity, providerID string) bool {
	p, ok := id.(ProviderIdentity)
	return ok && p.Owns(providerID)
}

// needProfile returns the provider profile behind id. Customers and
// providers without one get the same not-found error.
func needProfile(id Identity) (*models.ProviderProfile, error) {
	if v, ok := id.(ProviderIdentity); ok && v.Profile != nil {
		return v.Profile, nil
	}
	return nil, apperr.NotFound(MsgProfileNotFound)
}

func needBooking(a Action, r Resource) (*models.Booking, error) {
	if r.Booking == nil {
		return nil, apperr.Unexpected("Authorization failed", fmt.Errorf(msgMissingResource, a))
	}
	return r.Booking, nil
}
