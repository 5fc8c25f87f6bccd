package models

import (
	"time"
)

// RoleName is one of the fixed roles seeded at startup.
type RoleName string

const (
	RoleUser  RoleName = "User"
	RoleOwner RoleName = "Owner"
	RoleAdmin RoleName = "Admin"
)

// AllRoles lists the role catalog in seeding order.
var AllRoles = []RoleName{RoleUser, RoleOwner, RoleAdmin}

// Valid reports whether r belongs to the catalog.
func (r RoleName) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

type Role struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name RoleName `json:"name" gorm:"uniqueIndex;not null"`
}

type User struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"not null"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string       `json:"-" gorm:"not null"`
	RoleID       uint         `json:"role_id" gorm:"not null"`
	Role         Role         `json:"role" gorm:"foreignKey:RoleID"`
	DietID       *uint        `json:"diet_id"`
	Diet         *SpecialDiet `json:"diet,omitempty" gorm:"foreignKey:DietID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// SpecialDiet is a dietary restriction a user may opt into.
type SpecialDiet struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

type Allergen struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}
