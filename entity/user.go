package entity

import (
	"gorm.io/gorm"
)

// Roles a user account can hold. Each role gets its own route surface.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleCourier  = "courier"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
	Orders           []Order      `json:"-"`
}
