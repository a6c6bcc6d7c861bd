package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the coarse capability a user picked during onboarding.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// ParseRole validates a client-supplied role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleProvider:
		return Role(s), true
	}
	return "", false
}

// User is keyed by the identity provider's subject id.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Email           *string   `json:"email" gorm:"uniqueIndex"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Role            Role      `json:"userType" gorm:"column:user_type;type:varchar(20);not null;default:customer"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) IsProvider() bool { return u.Role == RoleProvider }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}
