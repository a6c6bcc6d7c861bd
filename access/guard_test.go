package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/models"
)

func customer(id string) Principal {
	return Principal{User: models.User{ID: id, Role: models.RoleCustomer}}
}

func provider(id, profileID string) Principal {
	return Principal{
		User:    models.User{ID: id, Role: models.RoleProvider},
		Profile: &models.ProviderProfile{ID: profileID, UserID: id},
	}
}

func TestIdentity(t *testing.T) {
	c, ok := customer("u1").Identity().(CustomerIdentity)
	require.True(t, ok)
	assert.Equal(t, "u1", c.UserID())

	p, ok := provider("u2", "pp2").Identity().(ProviderIdentity)
	require.True(t, ok)
	assert.True(t, p.Owns("pp2"))
	assert.False(t, p.Owns("pp3"))

	onboarding, ok := Principal{User: models.User{ID: "u3", Role: models.RoleProvider}}.Identity().(ProviderIdentity)
	require.True(t, ok)
	assert.Nil(t, onboarding.Profile)
	assert.False(t, onboarding.Owns(""))

	withProfile := Principal{
		User:    models.User{ID: "u4", Role: models.RoleCustomer},
		Profile: &models.ProviderProfile{ID: "pp4", UserID: "u4"},
	}
	_, ok = withProfile.Identity().(ProviderIdentity)
	assert.True(t, ok)
}

func TestAuthorizeProviderWithoutProfile(t *testing.T) {
	p := Principal{User: models.User{ID: "u3", Role: models.RoleProvider}}

	err := Authorize(p, ListCustomerBookings, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
	assert.Equal(t, MsgProvidersListOwn, apperr.Message(err))

	err = Authorize(p, CreateBooking, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	err = Authorize(p, ListProviderBookings, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, MsgProfileNotFound, apperr.Message(err))

	err = Authorize(p, UpdateBookingStatus, Resource{Booking: &models.Booking{ProviderID: ""}})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestAuthorizeBookingAccess(t *testing.T) {
	booking := &models.Booking{ID: "b1", CustomerID: "cust", ProviderID: "pp1"}
	res := Resource{Booking: booking}

	tests := []struct {
		name   string
		p      Principal
		action Action
		kind   apperr.Kind
		allow  bool
		msg    string
	}{
		{"customer views own", customer("cust"), ViewBooking, 0, true, ""},
		{"provider views own", provider("prov", "pp1"), ViewBooking, 0, true, ""},
		{"stranger views", customer("other"), ViewBooking, apperr.KindForbidden, false, MsgViewBooking},
		{"other provider views", provider("prov2", "pp2"), ViewBooking, apperr.KindForbidden, false, MsgViewBooking},
		{"provider updates own", provider("prov", "pp1"), UpdateBookingStatus, 0, true, ""},
		{"customer updates", customer("cust"), UpdateBookingStatus, apperr.KindForbidden, false, MsgUpdateBooking},
		{"other provider updates", provider("prov2", "pp2"), UpdateBookingStatus, apperr.KindForbidden, false, MsgUpdateBooking},
		{"customer pays", customer("cust"), PayBooking, 0, true, ""},
		{"provider pays", provider("prov", "pp1"), PayBooking, apperr.KindForbidden, false, MsgPayBooking},
		{"stranger pays", customer("other"), PayBooking, apperr.KindForbidden, false, MsgPayBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.action, res)
			if tt.allow {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
			assert.Equal(t, tt.msg, apperr.Message(err))
		})
	}
}

func TestAuthorizeListings(t *testing.T) {
	assert.NoError(t, Authorize(customer("c"), ListCustomerBookings, Resource{}))

	err := Authorize(provider("p", "pp"), ListCustomerBookings, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
	assert.Equal(t, MsgProvidersListOwn, apperr.Message(err))

	assert.NoError(t, Authorize(provider("p", "pp"), ListProviderBookings, Resource{}))
	assert.NoError(t, Authorize(provider("p", "pp"), ListProviderServices, Resource{}))

	err = Authorize(customer("c"), ListProviderBookings, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, MsgProfileNotFound, apperr.Message(err))
}

func TestAuthorizeServices(t *testing.T) {
	err := Authorize(Principal{User: models.User{ID: "p", Role: models.RoleProvider}}, CreateService, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, MsgProfileNotFound, apperr.Message(err))

	assert.NoError(t, Authorize(provider("p", "pp"), CreateService, Resource{}))

	svc := &models.Service{ID: "s1", ProviderID: "pp"}
	assert.NoError(t, Authorize(provider("p", "pp"), ManageService, Resource{Service: svc}))

	err = Authorize(provider("q", "qq"), ManageService, Resource{Service: svc})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestAuthorizeCreateBooking(t *testing.T) {
	assert.NoError(t, Authorize(customer("c"), CreateBooking, Resource{}))
	err := Authorize(provider("p", "pp"), CreateBooking, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestAuthorizeMissingResource(t *testing.T) {
	err := Authorize(customer("c"), ViewBooking, Resource{})
	assert.True(t, apperr.Is(err, apperr.KindUnexpected))
}
