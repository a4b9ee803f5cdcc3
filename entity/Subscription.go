package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PlanFree = "free"
	PlanPro  = "pro"

	SubStatusActive   = "active"
	SubStatusInactive = "inactive"
	SubStatusPastDue  = "past_due"
	SubStatusCanceled = "canceled"
	SubStatusTrialing = "trialing"
)

type Subscription struct {
	gorm.Model
	RestaurantID uint       `gorm:"uniqueIndex" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Plan   string `gorm:"default:free" json:"plan"`
	Status string `gorm:"default:active" json:"status"`

	PeriodStart *time.Time `json:"periodStart"`
	PeriodEnd   *time.Time `json:"periodEnd"`
}

func ValidPlan(p string) bool {
	return p == PlanFree || p == PlanPro
}

func ValidSubStatus(s string) bool {
	switch s {
	case SubStatusActive, SubStatusInactive, SubStatusPastDue, SubStatusCanceled, SubStatusTrialing:
		return true
	}
	return false
}
