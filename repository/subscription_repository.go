// repository/subscription_repository.go
package repository

import (
	"qrmenu-backend/entity"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) FindByID(id uint) (*entity.Subscription, error) {
	var sub entity.Subscription
	if err := r.DB.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) FindByRestaurant(restID uint) (*entity.Subscription, error) {
	var sub entity.Subscription
	if err := r.DB.Where("restaurant_id = ?", restID).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Update(sub *entity.Subscription) error {
	return r.DB.Save(sub).Error
}
