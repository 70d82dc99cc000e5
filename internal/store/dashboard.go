package store

import (
	"fmt"
	"time"

	"github.com/staymarket-dev/staymarket/internal/models"
)

// BookingSummary is a booking joined with its property's title and image
// for display.
type BookingSummary struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"property_id"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"image_url"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
}

type Dashboard struct {
	Bookings     []BookingSummary
	Listings     []models.Property
	TotalRevenue float64
}

// BuildDashboard aggregates a user's view: their bookings as a renter
// (owners can book too), and for owners additionally their listings and the
// revenue summed across bookings of every property they own. An owner with
// no bookings gets revenue 0, not null.
func (s *Store) BuildDashboard(userID uint, role string) (*Dashboard, error) {
	dashboard := &Dashboard{
		Bookings: make([]BookingSummary, 0),
		Listings: make([]models.Property, 0),
	}

	err := s.db.Model(&models.Booking{}).
		Select("bookings.id, bookings.property_id, properties.title, properties.image_url, bookings.start_date, bookings.end_date, bookings.total_price").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("bookings.renter_id = ?", userID).
		Scan(&dashboard.Bookings).Error

	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	if role != models.RoleOwner {
		return dashboard, nil
	}

	if err := s.db.Where("owner_id = ?", userID).Find(&dashboard.Listings).Error; err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}

	err = s.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(bookings.total_price), 0)").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ? AND properties.deleted_at IS NULL", userID).
		Scan(&dashboard.TotalRevenue).Error

	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return dashboard, nil
}
