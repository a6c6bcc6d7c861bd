package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderProfile extends a User who offers services. One per user.
type ProviderProfile struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex"`
	User            User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Bio             string    `json:"bio"`
	Phone           string    `json:"phone" gorm:"type:varchar(20)"`
	Location        string    `json:"location"`
	YearsExperience string    `json:"yearsExperience"`
	Verified        bool      `json:"verified" gorm:"default:false"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p *ProviderProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
