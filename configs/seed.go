package configs

import (
	"log"

	"qrmenu-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first operator account and puts it on the allow-list.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		user = entity.User{
			Email:    email,
			Password: string(hash),
			FullName: "Operator",
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	var count int64
	db.Model(&entity.AdminUser{}).Where("user_id = ?", user.ID).Count(&count)
	if count > 0 {
		log.Println("admin already on allow-list:", email)
		return nil
	}
	return db.Create(&entity.AdminUser{UserID: user.ID}).Error
}
