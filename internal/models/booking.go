package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model

	RenterID   uint      `gorm:"not null;index"`
	PropertyID uint      `gorm:"not null;index"`
	StartDate  time.Time `gorm:"not null;type:date"`
	EndDate    time.Time `gorm:"not null;type:date"`
	// TotalPrice is a snapshot taken at booking time; later edits to the
	// listing's nightly price do not change it.
	TotalPrice float64 `gorm:"not null"`

	// Relationships
	Renter   User     `gorm:"foreignKey:RenterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Property Property `gorm:"foreignKey:PropertyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
