package services

import (
	"errors"

	"github.com/pathania28/s2y-taste-trail/entity"

	"gorm.io/gorm"
)

// AdvanceStatus moves an order one step forward, or to cancelled from any
// non-terminal state. Anything else is ErrInvalidTransition and the row is
// left untouched. The update is guarded on the current status, so a lost
// race surfaces as an invalid transition rather than a silent double-apply.
func (s *OrderService) AdvanceStatus(orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return ErrInvalidTransition
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !o.Status.CanAdvanceTo(next) {
			return ErrInvalidTransition
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

// vendorStatuses are the transitions the restaurant surface may request.
var vendorStatuses = map[entity.OrderStatus]bool{
	entity.StatusConfirmed: true,
	entity.StatusPreparing: true,
	entity.StatusReady:     true,
	entity.StatusCancelled: true,
}

// courierStatuses are the transitions the delivery surface may request.
var courierStatuses = map[entity.OrderStatus]bool{
	entity.StatusPickedUp:  true,
	entity.StatusDelivered: true,
}

// AdvanceForVendor checks the order belongs to the vendor's restaurant
// before advancing through the shared state machine.
func (s *OrderService) AdvanceForVendor(vendorID, orderID uint, next entity.OrderStatus) error {
	if !vendorStatuses[next] {
		return ErrForbidden
	}
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	owned, err := s.RestRepo.IsOwnedBy(o.RestaurantID, vendorID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrForbidden
	}
	return s.AdvanceStatus(orderID, next)
}

// AdvanceForCourier lets the delivery surface take ready orders through
// pickup and delivery, nothing else.
func (s *OrderService) AdvanceForCourier(orderID uint, next entity.OrderStatus) error {
	if !courierStatuses[next] {
		return ErrForbidden
	}
	return s.AdvanceStatus(orderID, next)
}
