package services

import (
	"fmt"
	"strings"
	"testing"

	"qrmenu-backend/entity"
	"qrmenu-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.AdminUser{},
		&entity.Restaurant{}, &entity.Subscription{},
		&entity.Category{}, &entity.Product{},
		&entity.ScanEvent{},
	))
	return db
}

func createRestaurant(t *testing.T, db *gorm.DB, slug string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{
		Name:               slug,
		Slug:               slug,
		IsActive:           true,
		LayoutStyle:        "grid",
		SupportedLanguages: "tr,en",
	}
	require.NoError(t, db.Create(rest).Error)
	return rest
}

func createCategory(t *testing.T, db *gorm.DB, restID uint, name string, sortOrder int, active bool) *entity.Category {
	t.Helper()
	cat := &entity.Category{
		Name:         name,
		RestaurantID: restID,
		SortOrder:    sortOrder,
		IsActive:     active,
	}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func createProduct(t *testing.T, db *gorm.DB, p entity.Product) *entity.Product {
	t.Helper()
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(
		repository.NewRestaurantRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
	)
}
