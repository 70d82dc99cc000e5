package models

import "gorm.io/gorm"

type Property struct {
	gorm.Model

	OwnerID       uint    `gorm:"not null;index"`
	Title         string  `gorm:"not null"`
	City          string  `gorm:"not null;index"`
	PricePerNight float64 `gorm:"not null"`
	NumBedrooms   int     `gorm:"not null"`
	ImageURL      string
	Description   string

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Bookings []Booking `gorm:"foreignKey:PropertyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
