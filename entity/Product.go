package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name          string  `gorm:"not null" json:"name"`
	NameEN        string  `json:"nameEn"`
	Description   string  `json:"description"`
	DescriptionEN string  `json:"descriptionEn"`
	Price         float64 `gorm:"not null;default:0" json:"price"`

	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	ImageURL  string `json:"imageUrl"`

	// No column defaults on the flags: gorm drops zero-value fields that carry
	// one from the INSERT, which would turn a deliberate false back into true.
	IsActive       bool `json:"isActive"`
	IsFeatured     bool `json:"isFeatured"`
	IsDailySpecial bool `json:"isDailySpecial"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// nil = uncategorized
	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`
}
