package controllers

import (
	"net/http"
	"testing"
	"time"

	"qrmenu-backend/configs"
	"qrmenu-backend/entity"
	"qrmenu-backend/repository"
	"qrmenu-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := newTestDB(t)

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	ctl := NewAuthController(
		cfg,
		repository.NewUserRepository(db),
		services.NewRestaurantService(repository.NewRestaurantRepository(db)),
	)

	r := newTestRouter()
	r.POST("/auth/register", ctl.Register)
	r.POST("/auth/login", ctl.Login)
	return db, r
}

func TestRegister_HappyPathCreatesTenant(t *testing.T) {
	db, r := newAuthTestEnv(t)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"email":           "ayse@example.com",
		"password":        "gizli123",
		"passwordConfirm": "gizli123",
		"fullName":        "Ayşe Yılmaz",
		"restaurantName":  "Lezzet Durağı",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	rest := data["restaurant"].(map[string]any)
	assert.Equal(t, "lezzet-duragi", rest["slug"])

	var sub entity.Subscription
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, entity.PlanFree, sub.Plan)
	assert.Equal(t, entity.SubStatusActive, sub.Status)
}

func TestRegister_ValidationFailures(t *testing.T) {
	_, r := newAuthTestEnv(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"bad email", gin.H{"email": "not-an-email", "password": "gizli123", "passwordConfirm": "gizli123", "restaurantName": "X"}},
		{"short password", gin.H{"email": "a@example.com", "password": "abc", "passwordConfirm": "abc", "restaurantName": "X"}},
		{"confirmation mismatch", gin.H{"email": "a@example.com", "password": "gizli123", "passwordConfirm": "baska123", "restaurantName": "X"}},
		{"missing restaurant name", gin.H{"email": "a@example.com", "password": "gizli123", "passwordConfirm": "gizli123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegister_DuplicateEmailReported(t *testing.T) {
	_, r := newAuthTestEnv(t)

	body := gin.H{
		"email": "ayse@example.com", "password": "gizli123",
		"passwordConfirm": "gizli123", "restaurantName": "Birinci",
	}
	w := doJSON(t, r, "POST", "/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	body["restaurantName"] = "İkinci"
	w = doJSON(t, r, "POST", "/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestRegister_SameDisplayNameGetsSuffixedSlug(t *testing.T) {
	_, r := newAuthTestEnv(t)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"email": "a@example.com", "password": "gizli123",
		"passwordConfirm": "gizli123", "restaurantName": "Lezzet Durağı",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/auth/register", gin.H{
		"email": "b@example.com", "password": "gizli123",
		"passwordConfirm": "gizli123", "restaurantName": "Lezzet Durağı",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	rest := body["data"].(map[string]any)["restaurant"].(map[string]any)
	assert.Equal(t, "lezzet-duragi-1", rest["slug"])
}

func TestLogin_Flow(t *testing.T) {
	_, r := newAuthTestEnv(t)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"email": "ayse@example.com", "password": "gizli123",
		"passwordConfirm": "gizli123", "restaurantName": "Lezzet Durağı",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/auth/login", gin.H{
		"email": "ayse@example.com", "password": "gizli123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	w = doJSON(t, r, "POST", "/auth/login", gin.H{
		"email": "ayse@example.com", "password": "yanlis",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
