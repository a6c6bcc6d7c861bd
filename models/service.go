package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categories offered in the marketplace.
var Categories = []string{"Plumbing", "Electrical", "Painting", "Carpentry", "HVAC", "Cleaning"}

// NormalizeCategory returns the canonical spelling of c.
func NormalizeCategory(c string) (string, bool) {
	for _, known := range Categories {
		if strings.EqualFold(known, strings.TrimSpace(c)) {
			return known, true
		}
	}
	return "", false
}

type Service struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProviderID   string          `json:"providerId" gorm:"type:varchar(36);not null;index"`
	Provider     ProviderProfile `json:"-" gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Category     string          `json:"category" gorm:"type:varchar(50);not null;index"`
	Title        string          `json:"title" gorm:"type:varchar(200);not null"`
	Description  string          `json:"description"`
	PricePerHour Money           `json:"pricePerHour" gorm:"type:decimal(10,2);not null"`
	ImageURL     string          `json:"imageUrl"`
	CreatedAt    time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
