// Package access decides whether an authenticated caller may perform an
// action on a booking or service. Decisions are pure: nothing here touches
// the store.
package access

import "github.com/meinhoongagan/handyhub/models"

// Principal is the authenticated caller as resolved by the auth middleware.
// Profile is nil until the user has created a provider profile.
type Principal struct {
	User    models.User
	Profile *models.ProviderProfile
}

// Identity is either a CustomerIdentity or a ProviderIdentity. Authorize
// switches on it instead of comparing the stored role.
type Identity interface {
	UserID() string
	isIdentity()
}

type CustomerIdentity struct {
	ID string
}

func (c CustomerIdentity) UserID() string { return c.ID }
func (CustomerIdentity) isIdentity()      {}

// ProviderIdentity is a provider-role user or any user owning a provider
// profile. Profile is nil while onboarding is unfinished.
type ProviderIdentity struct {
	ID      string
	Profile *models.ProviderProfile
}

func (p ProviderIdentity) UserID() string { return p.ID }
func (ProviderIdentity) isIdentity()      {}

// Owns reports whether the provider's profile is providerID.
func (p ProviderIdentity) Owns(providerID string) bool {
	return p.Profile != nil && p.Profile.ID == providerID
}

// Identity resolves the capability the principal acts with.
func (p Principal) Identity() Identity {
	if p.User.IsProvider() || p.Profile != nil {
		return ProviderIdentity{ID: p.User.ID, Profile: p.Profile}
	}
	return CustomerIdentity{ID: p.User.ID}
}
