package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckoutPolicy decides what happens to cart lines whose menu item changed
// between add-to-cart and checkout. The storefront historically price-locked
// (the cart's snapshot wins, no re-read); revalidation is the stricter
// alternative. The choice is configuration, not code.
type CheckoutPolicy string

const (
	PolicyPriceLock  CheckoutPolicy = "price_lock"
	PolicyRevalidate CheckoutPolicy = "revalidate"
)

// CartLine is one not-yet-persisted selection from the presentation layer.
// Price is the unit price the cart captured when the item was added.
type CartLine struct {
	MenuItemID uint
	Quantity   int
	Price      int64
}

// OrderService owns order placement and everything that reads persisted
// orders. All three role surfaces go through this one service, so every
// screen observes the same authoritative order row.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	Policy   CheckoutPolicy
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, restRepo *repository.RestaurantRepository, policy CheckoutPolicy) *OrderService {
	if policy == "" {
		policy = PolicyPriceLock
	}
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, Policy: policy}
}

type PlacedOrder struct {
	ID    uint   `json:"id"`
	Code  string `json:"code"`
	Total int64  `json:"total"`
}

// PlaceOrder validates the checkout, computes the authoritative total and
// writes the order plus its items as one transaction. Preconditions are
// checked in a fixed sequence; the first failure wins.
func (s *OrderService) PlaceOrder(userID, restaurantID uint, lines []CartLine, address, phone, note string) (*PlacedOrder, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	// a line whose quantity dropped to zero leaves the working set
	kept := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity >= 1 {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyOrder
	}

	if strings.TrimSpace(address) == "" || strings.TrimSpace(phone) == "" {
		return nil, ErrInvalidDeliveryInfo
	}

	ok, err := s.RestRepo.Exists(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !ok {
		return nil, ErrNotFound
	}

	var out PlacedOrder
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if s.Policy == PolicyRevalidate {
			// the stricter policy: a stale cart may not buy what the
			// vendor has since pulled or repriced
			for i, l := range kept {
				m, err := s.Repo.GetMenuBasics(tx, l.MenuItemID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrItemUnavailable
					}
					return err
				}
				if !m.Available || m.RestaurantID != restaurantID {
					return ErrItemUnavailable
				}
				kept[i].Price = m.Price
			}
		}

		var total int64
		for _, l := range kept {
			total += l.Price * int64(l.Quantity)
		}

		order := entity.Order{
			Code:            "ORD-" + uuid.NewString()[:8],
			TotalAmount:     total,
			Status:          entity.StatusPending,
			DeliveryAddress: strings.TrimSpace(address),
			PhoneNumber:     strings.TrimSpace(phone),
			Note:            strings.TrimSpace(note),
			UserID:          userID,
			RestaurantID:    restaurantID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// every item write is scoped to the order id created above; a
		// concurrent checkout can never interleave into this order
		for _, l := range kept {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = PlacedOrder{ID: order.ID, Code: order.Code, Total: order.TotalAmount}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrItemUnavailable) {
			return nil, err
		}
		// the rollback already removed the half-written order; the caller
		// must never hear "success" for it, nor keep a billable row
		return nil, fmt.Errorf("%w: %v", ErrPlacementFailed, err)
	}
	return &out, nil
}

// ---------------- Reads ----------------

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order          `json:"order"`
	Items []repository.ItemLine `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) ListForVendor(vendorID uint, status *entity.OrderStatus, limit int) ([]repository.VendorOrderSummary, error) {
	rest, err := s.RestRepo.FindByOwner(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.Repo.ListOrdersForRestaurant(rest.ID, status, limit)
}

func (s *OrderService) ListByStatus(status entity.OrderStatus, limit int) ([]repository.CourierOrderSummary, error) {
	if !status.Valid() {
		return nil, ErrNotFound
	}
	return s.Repo.ListOrdersByStatus(status, limit)
}
