package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Code is the opaque public identifier shown to users ("#a1b2c3"),
	// assigned once at placement.
	Code        string      `gorm:"uniqueIndex" json:"code"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `gorm:"type:text;not null;default:pending" json:"status"`

	// snapshot of the checkout form; required non-empty at placement
	DeliveryAddress string `json:"deliveryAddress"`
	PhoneNumber     string `json:"phoneNumber"`
	Note            string `json:"note"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// written once in the placement transaction, never mutated after
	OrderItems []OrderItem `json:"-"`
}
