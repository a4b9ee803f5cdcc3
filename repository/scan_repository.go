// repository/scan_repository.go
package repository

import (
	"time"

	"qrmenu-backend/entity"

	"gorm.io/gorm"
)

type ScanRepository struct {
	DB *gorm.DB
}

func NewScanRepository(db *gorm.DB) *ScanRepository {
	return &ScanRepository{DB: db}
}

func (r *ScanRepository) Create(ev *entity.ScanEvent) error {
	return r.DB.Create(ev).Error
}

// CountSince counts events at or after the boundary; a zero time counts all.
func (r *ScanRepository) CountSince(restID uint, since time.Time) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.ScanEvent{}).Where("restaurant_id = ?", restID)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *ScanRepository) FindSince(restID uint, since time.Time) ([]entity.ScanEvent, error) {
	var events []entity.ScanEvent
	err := r.DB.
		Where("restaurant_id = ? AND created_at >= ?", restID, since).
		Order("created_at").
		Find(&events).Error
	return events, err
}
