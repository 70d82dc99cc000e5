package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/staymarket-dev/staymarket/internal/models"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ParseStayDates parses check-in and check-out (YYYY-MM-DD) and returns the
// stay length in whole nights. Malformed dates, equal dates and inverted
// ranges all fail with ErrInvalidDateRange.
func ParseStayDates(startDate, endDate string) (start, end time.Time, nights int, err error) {
	start, err = time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: invalid check-in date %q", ErrInvalidDateRange, startDate)
	}

	end, err = time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: invalid check-out date %q", ErrInvalidDateRange, endDate)
	}

	nights = int(end.Sub(start) / (24 * time.Hour))

	if nights <= 0 {
		return time.Time{}, time.Time{}, 0, ErrInvalidDateRange
	}

	return start, end, nights, nil
}

// CreateBooking books a stay at the property's current nightly price:
// total = nights x price_per_night, stored as a snapshot. The price read
// and the insert share one transaction so a concurrent price edit cannot
// land between them. Overlapping bookings for the same property are
// deliberately not rejected.
func (s *Store) CreateBooking(renterID, propertyID uint, startDate, endDate string) (*models.Booking, error) {
	start, end, nights, err := ParseStayDates(startDate, endDate)

	if err != nil {
		return nil, err
	}

	var booking models.Booking

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property

		if err := tx.First(&property, propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch property: %w", err)
		}

		booking = models.Booking{
			RenterID:   renterID,
			PropertyID: property.ID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: float64(nights) * property.PricePerNight,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &booking, nil
}
