package services

import (
	"errors"
	"fmt"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/repository"

	"gorm.io/gorm"
)

// CatalogService is the read side of the ledger: restaurants and the
// available portion of their menus. When the store cannot be reached the
// caller gets ErrBackendUnavailable and must render an empty list, never
// stale data.
type CatalogService struct {
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewCatalogService(restRepo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *CatalogService {
	return &CatalogService{RestRepo: restRepo, MenuRepo: menuRepo}
}

func (s *CatalogService) ListRestaurants() ([]entity.Restaurant, error) {
	rests, err := s.RestRepo.FindAllByRating()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return rests, nil
}

func (s *CatalogService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return rest, nil
}

// ListMenuItems returns only available items; the vendor's unavailable
// dishes never reach the ordering flow.
func (s *CatalogService) ListMenuItems(restaurantID uint) ([]entity.MenuItem, error) {
	items, err := s.MenuRepo.FindAvailableByRestaurant(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return items, nil
}
