package controllers

import (
	"net/http"
	"testing"

	"qrmenu-backend/configs"
	"qrmenu-backend/entity"
	"qrmenu-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminTestEnv(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := newTestDB(t)

	cfg := &configs.Config{JWTSecret: "test-secret"}
	ctl := NewAdminController(
		repository.NewRestaurantRepository(db),
		repository.NewSubscriptionRepository(db),
		repository.NewScanRepository(db),
		cfg,
	)

	r := newTestRouter()
	admin := r.Group("/admin", asTenant(1, 0))
	admin.PATCH("/restaurants/:id", ctl.UpdateRestaurant)
	admin.PATCH("/subscriptions/:id", ctl.UpdateSubscription)
	admin.GET("/stats", ctl.Stats)

	return db, r
}

func seedAdminTenant(t *testing.T, db *gorm.DB) (*entity.Restaurant, *entity.Subscription) {
	t.Helper()
	rest := &entity.Restaurant{Name: "Lezzet Durağı", Slug: "lezzet-duragi", IsActive: true}
	require.NoError(t, db.Create(rest).Error)
	sub := &entity.Subscription{RestaurantID: rest.ID, Plan: entity.PlanFree, Status: entity.SubStatusActive}
	require.NoError(t, db.Create(sub).Error)
	return rest, sub
}

func TestAdminUpdateSubscription_RejectsUnknownPlan(t *testing.T) {
	db, r := newAdminTestEnv(t)
	_, sub := seedAdminTenant(t, db)

	w := doJSON(t, r, "PATCH", "/admin/subscriptions/1", gin.H{"plan": "enterprise"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown plan")

	var got entity.Subscription
	require.NoError(t, db.First(&got, sub.ID).Error)
	assert.Equal(t, entity.PlanFree, got.Plan)
}

func TestAdminUpdateSubscription_RejectsUnknownStatus(t *testing.T) {
	db, r := newAdminTestEnv(t)
	_, sub := seedAdminTenant(t, db)

	w := doJSON(t, r, "PATCH", "/admin/subscriptions/1", gin.H{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown status")

	var got entity.Subscription
	require.NoError(t, db.First(&got, sub.ID).Error)
	assert.Equal(t, entity.SubStatusActive, got.Status)
}

func TestAdminUpdateSubscription_ValidChangePersists(t *testing.T) {
	db, r := newAdminTestEnv(t)
	_, sub := seedAdminTenant(t, db)

	w := doJSON(t, r, "PATCH", "/admin/subscriptions/1", gin.H{
		"plan":   entity.PlanPro,
		"status": entity.SubStatusPastDue,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Subscription
	require.NoError(t, db.First(&got, sub.ID).Error)
	assert.Equal(t, entity.PlanPro, got.Plan)
	assert.Equal(t, entity.SubStatusPastDue, got.Status)
}

func TestAdminUpdateSubscription_UnknownIDIs404(t *testing.T) {
	_, r := newAdminTestEnv(t)

	w := doJSON(t, r, "PATCH", "/admin/subscriptions/99", gin.H{"plan": entity.PlanPro})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpdateRestaurant_DeactivationHidesFromPublicSet(t *testing.T) {
	db, r := newAdminTestEnv(t)
	rest, _ := seedAdminTenant(t, db)

	w := doJSON(t, r, "PATCH", "/admin/restaurants/1", gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Restaurant
	require.NoError(t, db.First(&got, rest.ID).Error)
	assert.False(t, got.IsActive)

	active, err := repository.NewRestaurantRepository(db).FindAllActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAdminStats_TotalsPerTenant(t *testing.T) {
	db, r := newAdminTestEnv(t)
	rest, _ := seedAdminTenant(t, db)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entity.ScanEvent{RestaurantID: rest.ID}).Error)
	}

	w := doJSON(t, r, "GET", "/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	row := items[0].(map[string]any)
	assert.Equal(t, "lezzet-duragi", row["slug"])
	assert.Equal(t, float64(3), row["totalScans"])
}
