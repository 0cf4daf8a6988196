package repository

import (
	"github.com/pathania28/s2y-taste-trail/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAvailableByRestaurant is the customer-facing catalog read: only items
// currently flagged available, ordered by id so two calls with no
// intervening write return the same sequence.
func (r *MenuRepository) FindAvailableByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ? AND available = ?", restID, true).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// FindByRestaurant lists everything including unavailable items, for the
// vendor's own menu management view.
func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("available", available).Error
}
