// repository/product_repository.go
package repository

import (
	"qrmenu-backend/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByRestaurant(restID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("restaurant_id = ?", restID).
		Order("sort_order, id").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindActiveByRestaurant(restID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ?", restID, true).
		Order("sort_order, id").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindActiveByCategory(catID, restID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("category_id = ? AND restaurant_id = ? AND is_active = ?", catID, restID, true).
		Order("sort_order, id").
		Find(&products).Error
	return products, err
}

// FindFeatured returns the homepage highlight section, capped at limit.
func (r *ProductRepository) FindFeatured(restID uint, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ? AND is_featured = ?", restID, true, true).
		Order("sort_order, id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindDailySpecials returns the "today" section, capped at limit. A product
// may appear here and in the featured section at the same time.
func (r *ProductRepository) FindDailySpecials(restID uint, limit int) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.
		Where("restaurant_id = ? AND is_active = ? AND is_daily_special = ?", restID, true, true).
		Order("sort_order, id").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByIDForRestaurant(id, restID uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Where("id = ? AND restaurant_id = ?", id, restID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) UpdatePrice(id, restID uint, price float64) error {
	return r.DB.Model(&entity.Product{}).
		Where("id = ? AND restaurant_id = ?", id, restID).
		Update("price", price).Error
}

func (r *ProductRepository) Delete(id, restID uint) error {
	return r.DB.Where("restaurant_id = ?", restID).Delete(&entity.Product{}, id).Error
}
