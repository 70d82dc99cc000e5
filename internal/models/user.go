package models

import "gorm.io/gorm"

const (
	RoleRenter = "renter"
	RoleOwner  = "owner"
)

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:'renter'"` // "renter" or "owner"; owners can also book

	// Relationships
	Properties []Property `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Bookings   []Booking  `gorm:"foreignKey:RenterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
