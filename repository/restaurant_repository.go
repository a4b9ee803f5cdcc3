// repository/restaurant_repository.go
package repository

import (
	"qrmenu-backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindActiveBySlug backs the public menu page; disabled tenants are invisible.
func (r *RestaurantRepository) FindActiveBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByOwner(ownerID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("owner_id = ?", ownerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindAll is admin-only: every tenant with owner and subscription attached.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Owner").
		Preload("Subscription").
		Order("id").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindAllActive() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("is_active = ?", true).Order("id").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// SlugTaken reports whether another restaurant already holds slug.
func (r *RestaurantRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
