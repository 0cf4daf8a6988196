package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	// price in minor currency units
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category"`
	Available bool   `gorm:"default:true" json:"available"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
