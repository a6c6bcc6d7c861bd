package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinhoongagan/handyhub/config"
	"github.com/meinhoongagan/handyhub/models"
)

func TestOpenTestMigratesSchema(t *testing.T) {
	gdb, err := OpenTest()
	require.NoError(t, err)

	for _, model := range []any{&models.User{}, &models.ProviderProfile{}, &models.Service{}, &models.Booking{}, &models.Payment{}} {
		assert.True(t, gdb.Migrator().HasTable(model))
	}
}

func TestProfileUniquePerUser(t *testing.T) {
	gdb, err := OpenTest()
	require.NoError(t, err)

	require.NoError(t, gdb.Create(&models.User{ID: "u1", Role: models.RoleProvider}).Error)
	require.NoError(t, gdb.Create(&models.ProviderProfile{UserID: "u1"}).Error)
	assert.Error(t, gdb.Create(&models.ProviderProfile{UserID: "u1"}).Error)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql", URL: "x"})
	assert.ErrorContains(t, err, "unsupported driver")
}
