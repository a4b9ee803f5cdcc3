// repository/category_repository.go
package repository

import (
	"qrmenu-backend/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindByRestaurant(restID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("sort_order, id").
		Find(&cats).Error
	return cats, err
}

// FindActiveByRestaurant is the public-menu view: active categories ordered by
// sort_order, ties broken by insertion.
func (r *CategoryRepository) FindActiveByRestaurant(restID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ?", restID, true).
		Order("sort_order, id").
		Find(&cats).Error
	return cats, err
}

// FindByIDForRestaurant scopes the lookup so a category can never be read
// across tenants.
func (r *CategoryRepository) FindByIDForRestaurant(id, restID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.
		Where("id = ? AND restaurant_id = ?", id, restID).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// FindActiveByIDForRestaurant is the public-page variant: a deactivated
// category is not found, even by direct id.
func (r *CategoryRepository) FindActiveByIDForRestaurant(id, restID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.
		Where("id = ? AND restaurant_id = ? AND is_active = ?", id, restID, true).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

func (r *CategoryRepository) Delete(id, restID uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Category{}, id).Error
}
