package store

import (
	"errors"
	"fmt"

	"github.com/staymarket-dev/staymarket/internal/models"
	"gorm.io/gorm"
)

// PropertyInput carries the full set of listing fields. Create and update
// both take the whole record; there are no patch semantics.
type PropertyInput struct {
	Title         string
	City          string
	PricePerNight float64
	NumBedrooms   int
	ImageURL      string
	Description   string
}

// ListProperties returns all listings, optionally filtered by exact city.
func (s *Store) ListProperties(city string) ([]models.Property, error) {
	properties := make([]models.Property, 0)

	query := s.db
	if city != "" {
		query = query.Where("city = ?", city)
	}

	if err := query.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return properties, nil
}

func (s *Store) GetProperty(id uint) (*models.Property, error) {
	var property models.Property

	if err := s.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch property: %w", err)
	}

	return &property, nil
}

// OwnedProperty fetches a listing and verifies the caller owns it.
func (s *Store) OwnedProperty(id, callerID uint) (*models.Property, error) {
	property, err := s.GetProperty(id)

	if err != nil {
		return nil, err
	}

	if property.OwnerID != callerID {
		return nil, ErrPermissionDenied
	}

	return property, nil
}

func (s *Store) CreateProperty(ownerID uint, in PropertyInput) (*models.Property, error) {
	property := models.Property{
		OwnerID:       ownerID,
		Title:         in.Title,
		City:          in.City,
		PricePerNight: in.PricePerNight,
		NumBedrooms:   in.NumBedrooms,
		ImageURL:      in.ImageURL,
		Description:   in.Description,
	}

	if err := s.db.Create(&property).Error; err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	return &property, nil
}

// UpdateProperty replaces every listing field. The ownership check and the
// write run in one transaction so a concurrent transfer cannot slip between
// them.
func (s *Store) UpdateProperty(id, callerID uint, in PropertyInput) (*models.Property, error) {
	var property models.Property

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch property: %w", err)
		}

		if property.OwnerID != callerID {
			return ErrPermissionDenied
		}

		property.Title = in.Title
		property.City = in.City
		property.PricePerNight = in.PricePerNight
		property.NumBedrooms = in.NumBedrooms
		property.ImageURL = in.ImageURL
		property.Description = in.Description

		if err := tx.Save(&property).Error; err != nil {
			return fmt.Errorf("update property: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &property, nil
}

// DeleteProperty removes a listing and every booking referencing it inside
// one transaction: dependents first, then the listing, with no observable
// partial delete.
func (s *Store) DeleteProperty(id, callerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property

		if err := tx.First(&property, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch property: %w", err)
		}

		if property.OwnerID != callerID {
			return ErrPermissionDenied
		}

		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}

		if err := tx.Delete(&property).Error; err != nil {
			return fmt.Errorf("delete property: %w", err)
		}

		return nil
	})
}
