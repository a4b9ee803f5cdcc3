package services

import (
	"testing"

	"qrmenu-backend/entity"
	"qrmenu-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserRestaurantAndSubscription(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	user, rest, err := svc.Register(RegisterInput{
		Email:          "Owner@Example.com",
		Password:       "secret1",
		FullName:       "Ayşe Yılmaz",
		RestaurantName: "Lezzet Durağı",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "lezzet-duragi", rest.Slug)
	assert.Equal(t, user.ID, rest.OwnerID)
	assert.True(t, rest.IsActive)
	assert.Equal(t, entity.BaseLanguage, rest.SupportedLanguages)

	var sub entity.Subscription
	require.NoError(t, db.Where("restaurant_id = ?", rest.ID).First(&sub).Error)
	assert.Equal(t, entity.PlanFree, sub.Plan)
	assert.Equal(t, entity.SubStatusActive, sub.Status)
}

func TestRegister_DuplicateNameGetsNumericSuffix(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	_, first, err := svc.Register(RegisterInput{
		Email: "a@example.com", Password: "secret1", RestaurantName: "Lezzet Durağı",
	})
	require.NoError(t, err)
	assert.Equal(t, "lezzet-duragi", first.Slug)

	_, second, err := svc.Register(RegisterInput{
		Email: "b@example.com", Password: "secret1", RestaurantName: "Lezzet Durağı",
	})
	require.NoError(t, err)
	assert.Equal(t, "lezzet-duragi-1", second.Slug)

	_, third, err := svc.Register(RegisterInput{
		Email: "c@example.com", Password: "secret1", RestaurantName: "Lezzet Durağı",
	})
	require.NoError(t, err)
	assert.Equal(t, "lezzet-duragi-2", third.Slug)
}

func TestRegister_DuplicateEmailLeavesNoOrphanRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	_, _, err := svc.Register(RegisterInput{
		Email: "dup@example.com", Password: "secret1", RestaurantName: "Birinci",
	})
	require.NoError(t, err)

	// the unique index on email fails inside the transaction
	_, _, err = svc.Register(RegisterInput{
		Email: "dup@example.com", Password: "secret1", RestaurantName: "İkinci",
	})
	require.Error(t, err)

	var restCount, subCount int64
	db.Model(&entity.Restaurant{}).Count(&restCount)
	db.Model(&entity.Subscription{}).Count(&subCount)
	assert.EqualValues(t, 1, restCount)
	assert.EqualValues(t, 1, subCount)
}

func TestUpdateProfile_SlugConflictIsUserFacing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))

	createRestaurant(t, db, "taken")
	mine := createRestaurant(t, db, "mine")

	slug := "taken"
	_, err := svc.UpdateProfile(mine.ID, UpdateProfileInput{Slug: &slug})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// keeping your own slug is never a conflict
	same := "mine"
	rest, err := svc.UpdateProfile(mine.ID, UpdateProfileInput{Slug: &same})
	require.NoError(t, err)
	assert.Equal(t, "mine", rest.Slug)
}

func TestUpdateProfile_LanguagesAlwaysKeepBase(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))
	rest := createRestaurant(t, db, "dil-testi")

	// client tries to drop Turkish entirely
	updated, err := svc.UpdateProfile(rest.ID, UpdateProfileInput{SupportedLanguages: []string{"en"}})
	require.NoError(t, err)
	assert.Equal(t, "tr,en", updated.SupportedLanguages)

	updated, err = svc.UpdateProfile(rest.ID, UpdateProfileInput{SupportedLanguages: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "tr", updated.SupportedLanguages)
}

func TestUpdateProfile_RejectsUnknownLayout(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))
	rest := createRestaurant(t, db, "layout-testi")

	bad := "masonry"
	_, err := svc.UpdateProfile(rest.ID, UpdateProfileInput{LayoutStyle: &bad})
	assert.Error(t, err)
}

func TestUpdateQRBackdropColor(t *testing.T) {
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db))
	rest := createRestaurant(t, db, "renk-testi")

	updated, err := svc.UpdateQRBackdropColor(rest.ID, "#ff8800")
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", updated.QRBackdropColor)

	var fromDB entity.Restaurant
	require.NoError(t, db.First(&fromDB, rest.ID).Error)
	assert.Equal(t, "#ff8800", fromDB.QRBackdropColor)
}
