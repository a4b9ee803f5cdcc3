package configs

import (
	"qrmenu-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.AdminUser{},
		&entity.Restaurant{}, &entity.Subscription{},
		&entity.Category{}, &entity.Product{},
		&entity.ScanEvent{},
	)
}
