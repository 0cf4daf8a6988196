package repository

import (
	"time"

	"github.com/pathania28/s2y-taste-trail/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder runs inside the caller's transaction: the order row and its
// items must become visible together or not at all.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is the order-history row: the order joined with the
// restaurant it was placed at.
type OrderSummary struct {
	ID              uint               `json:"id"`
	Code            string             `json:"code"`
	RestaurantID    uint               `json:"restaurantId"`
	RestaurantName  string             `json:"restaurantName"`
	RestaurantImage string             `json:"restaurantImage"`
	TotalAmount     int64              `json:"totalAmount"`
	Status          entity.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"deliveryAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListOrdersForUser returns the caller's orders, newest first.
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.code, o.restaurant_id, r.name AS restaurant_name, r.image_url AS restaurant_image, o.total_amount, o.status, o.delivery_address, o.created_at").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.user_id = ? AND o.deleted_at IS NULL", userID).
		Order("o.created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ItemLine is one order line joined with the menu item's display name.
type ItemLine struct {
	ID         uint   `json:"id"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]ItemLine, error) {
	var lines []ItemLine
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, m.name, oi.quantity, oi.unit_price").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id ASC").
		Scan(&lines).Error
	return lines, err
}

// VendorOrderSummary adds the customer's name for the vendor's order board.
type VendorOrderSummary struct {
	ID              uint               `json:"id"`
	Code            string             `json:"code"`
	UserID          uint               `json:"userId"`
	CustomerName    string             `json:"customerName"`
	TotalAmount     int64              `json:"totalAmount"`
	Status          entity.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PhoneNumber     string             `json:"phoneNumber"`
	CreatedAt       time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, limit int) ([]VendorOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.code, o.user_id, u.name AS customer_name, o.total_amount, o.status, o.delivery_address, o.phone_number, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil {
		db = db.Where("o.status = ?", *status)
	}
	var out []VendorOrderSummary
	err := db.Order("o.created_at DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// CourierOrderSummary carries both pickup and dropoff context for the
// courier's job board.
type CourierOrderSummary struct {
	ID              uint               `json:"id"`
	Code            string             `json:"code"`
	RestaurantName  string             `json:"restaurantName"`
	CustomerName    string             `json:"customerName"`
	PhoneNumber     string             `json:"phoneNumber"`
	DeliveryAddress string             `json:"deliveryAddress"`
	TotalAmount     int64              `json:"totalAmount"`
	Status          entity.OrderStatus `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersByStatus(status entity.OrderStatus, limit int) ([]CourierOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []CourierOrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.code, r.name AS restaurant_name, u.name AS customer_name, o.phone_number, o.delivery_address, o.total_amount, o.status, o.created_at").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.status = ? AND o.deleted_at IS NULL", status).
		Order("o.created_at ASC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only if the row still holds the
// expected current status; a concurrent advance makes this a no-op and the
// caller sees zero rows affected.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// ---------------- Checkout helpers ----------------

// GetMenuBasics reads the fields placement revalidation needs.
func (r *OrderRepository) GetMenuBasics(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := tx.Select("id, price, available, restaurant_id").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderRepository) CountOrders() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountOrderItems() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Count(&cnt).Error
	return cnt, err
}
