package services

import (
	"errors"
	"strings"

	"github.com/pathania28/s2y-taste-trail/entity"
	"github.com/pathania28/s2y-taste-trail/repository"

	"gorm.io/gorm"
)

// MenuService is the vendor's menu management surface. Every mutation is
// gated on the caller owning the restaurant the item belongs to.
type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

// restaurantFor resolves the vendor's restaurant; a vendor without one has
// nothing to manage.
func (s *MenuService) restaurantFor(vendorID uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByOwner(vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return rest, nil
}

func (s *MenuService) ListForVendor(vendorID uint) ([]entity.MenuItem, error) {
	rest, err := s.restaurantFor(vendorID)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByRestaurant(rest.ID)
}

type MenuItemInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

func (s *MenuService) Create(vendorID uint, in *MenuItemInput) (*entity.MenuItem, error) {
	rest, err := s.restaurantFor(vendorID)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "Main"
	}
	item := &entity.MenuItem{
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		Category:     category,
		Available:    true,
		RestaurantID: rest.ID,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// owned loads the item and verifies it sits on the vendor's menu.
func (s *MenuService) owned(vendorID, itemID uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ok, err := s.RestRepo.IsOwnedBy(item.RestaurantID, vendorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return item, nil
}

func (s *MenuService) Update(vendorID, itemID uint, in *MenuItemInput) (*entity.MenuItem, error) {
	item, err := s.owned(vendorID, itemID)
	if err != nil {
		return nil, err
	}
	item.Name = strings.TrimSpace(in.Name)
	item.Description = strings.TrimSpace(in.Description)
	item.Price = in.Price
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		item.Category = c
	}
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(vendorID, itemID uint) error {
	if _, err := s.owned(vendorID, itemID); err != nil {
		return err
	}
	return s.Repo.Delete(itemID)
}

func (s *MenuService) SetAvailability(vendorID, itemID uint, available bool) error {
	if _, err := s.owned(vendorID, itemID); err != nil {
		return err
	}
	return s.Repo.SetAvailability(itemID, available)
}
