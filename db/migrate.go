package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/meinhoongagan/handyhub/models"
)

// Migrate runs AutoMigrate for every marketplace table. serve runs it on
// startup unless --migrate=false.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
