package entity

import (
	"gorm.io/gorm"
)

// AdminUser is a bare allow-list: a row means the user is an admin.
type AdminUser struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`
}
