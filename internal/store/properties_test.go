package store

import (
	"testing"

	"github.com/staymarket-dev/staymarket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPropertiesCityFilter(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)
	seedProperty(t, s, owner.ID, "Canal House", "Amsterdam", 120.00)
	seedProperty(t, s, owner.ID, "Garden Flat", "Amsterdam", 90.00)

	all, err := s.ListProperties("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	amsterdam, err := s.ListProperties("Amsterdam")
	require.NoError(t, err)
	assert.Len(t, amsterdam, 2)

	for _, property := range amsterdam {
		assert.Equal(t, "Amsterdam", property.City)
	}

	nowhere, err := s.ListProperties("Atlantis")
	require.NoError(t, err)
	assert.Empty(t, nowhere)
}

func TestGetPropertyNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetProperty(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePropertyReplacesAllFields(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	property := seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)

	updated, err := s.UpdateProperty(property.ID, owner.ID, PropertyInput{
		Title:         "Harbour Loft Deluxe",
		City:          "Rotterdam",
		PricePerNight: 140.00,
		NumBedrooms:   3,
		ImageURL:      "https://images.example.com/deluxe.jpg",
		Description:   "Now with a third bedroom",
	})
	require.NoError(t, err)

	assert.Equal(t, "Harbour Loft Deluxe", updated.Title)
	assert.InDelta(t, 140.00, updated.PricePerNight, 1e-9)
	assert.Equal(t, 3, updated.NumBedrooms)

	stored, err := s.GetProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour Loft Deluxe", stored.Title)
}

func TestUpdatePropertyPermissionDenied(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	intruder := seedUser(t, s, "intruder", models.RoleOwner)
	property := seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)

	_, err := s.UpdateProperty(property.ID, intruder.ID, PropertyInput{
		Title:         "Hijacked",
		City:          "Rotterdam",
		PricePerNight: 1.00,
		NumBedrooms:   1,
		ImageURL:      "https://images.example.com/x.jpg",
		Description:   "x",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	stored, err := s.GetProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harbour Loft", stored.Title)
}

func TestUpdatePropertyNotFound(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)

	_, err := s.UpdateProperty(42, owner.ID, PropertyInput{
		Title: "x", City: "x", PricePerNight: 1, NumBedrooms: 1, ImageURL: "x", Description: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePropertyCascadesBookings(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	renter := seedUser(t, s, "renter", models.RoleRenter)

	doomed := seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)
	kept := seedProperty(t, s, owner.ID, "Canal House", "Amsterdam", 120.00)

	_, err := s.CreateBooking(renter.ID, doomed.ID, "2025-11-04", "2025-11-07")
	require.NoError(t, err)
	_, err = s.CreateBooking(renter.ID, doomed.ID, "2025-12-01", "2025-12-03")
	require.NoError(t, err)
	keptBooking, err := s.CreateBooking(renter.ID, kept.ID, "2025-11-10", "2025-11-12")
	require.NoError(t, err)

	require.NoError(t, s.DeleteProperty(doomed.ID, owner.ID))

	_, err = s.GetProperty(doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int64
	require.NoError(t, s.db.Model(&models.Booking{}).Where("property_id = ?", doomed.ID).Count(&orphans).Error)
	assert.EqualValues(t, 0, orphans, "no booking referencing a deleted property may remain queryable")

	var survivor models.Booking
	require.NoError(t, s.db.First(&survivor, keptBooking.ID).Error)
	assert.Equal(t, kept.ID, survivor.PropertyID)
}

func TestDeletePropertyPermissionDenied(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	intruder := seedUser(t, s, "intruder", models.RoleOwner)
	renter := seedUser(t, s, "renter", models.RoleRenter)
	property := seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)

	booking, err := s.CreateBooking(renter.ID, property.ID, "2025-11-04", "2025-11-07")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteProperty(property.ID, intruder.ID), ErrPermissionDenied)

	// Neither the listing nor its bookings were touched.
	_, err = s.GetProperty(property.ID)
	require.NoError(t, err)

	var stored models.Booking
	require.NoError(t, s.db.First(&stored, booking.ID).Error)
}

func TestOwnedProperty(t *testing.T) {
	s := openTestStore(t)

	owner := seedUser(t, s, "owner", models.RoleOwner)
	intruder := seedUser(t, s, "intruder", models.RoleOwner)
	property := seedProperty(t, s, owner.ID, "Harbour Loft", "Rotterdam", 100.00)

	got, err := s.OwnedProperty(property.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, property.ID, got.ID)

	_, err = s.OwnedProperty(property.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
