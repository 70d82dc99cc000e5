package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/staymarket-dev/staymarket/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestStore opens a per-test in-memory SQLite database. cache=shared
// keeps every pooled connection on the same database; the test name keys
// the database so tests stay isolated.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Property{}, &models.Booking{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return New(db)
}

func seedUser(t *testing.T, s *Store, username, role string) *models.User {
	t.Helper()

	user, err := s.Register(username, username+"@example.com", "password123", role)
	require.NoError(t, err)

	return user
}

func seedProperty(t *testing.T, s *Store, ownerID uint, title, city string, price float64) *models.Property {
	t.Helper()

	property, err := s.CreateProperty(ownerID, PropertyInput{
		Title:         title,
		City:          city,
		PricePerNight: price,
		NumBedrooms:   2,
		ImageURL:      "https://images.example.com/" + title + ".jpg",
		Description:   "A lovely place to stay",
	})
	require.NoError(t, err)

	return property
}
