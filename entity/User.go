package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`

	// Relations; preload only when needed
	Restaurant *Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
}
