package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanEvent is an append-only fact row per public menu page view.
// No update or delete path exists; rows are only counted.
type ScanEvent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	UserAgent string `json:"userAgent"`
	Referrer  string `json:"referrer"`
}

func (e *ScanEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
