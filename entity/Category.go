package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	NameEN string `json:"nameEn"`

	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	IsActive  bool   `json:"isActive"`
	ImageURL  string `json:"imageUrl"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Products []Product `json:"-"`
}
