package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`
	// UnitPrice is captured at checkout time; later menu price edits
	// must not retroactively alter historical orders.
	UnitPrice int64 `json:"unitPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
