package controllers

import (
	"strconv"
	"time"

	"qrmenu-backend/configs"
	"qrmenu-backend/entity"
	"qrmenu-backend/middlewares"
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController mirrors the tenant console's CRUD across all tenants; every
// route behind it is gated by the allow-list middleware.
type AdminController struct {
	Restaurants   *repository.RestaurantRepository
	Subscriptions *repository.SubscriptionRepository
	Scans         *repository.ScanRepository
	Cfg           *configs.Config
}

func NewAdminController(rr *repository.RestaurantRepository, sr *repository.SubscriptionRepository, scans *repository.ScanRepository, cfg *configs.Config) *AdminController {
	return &AdminController{Restaurants: rr, Subscriptions: sr, Scans: scans, Cfg: cfg}
}

// GET /admin/restaurants
func (ctl *AdminController) ListRestaurants(c *gin.Context) {
	rests, err := ctl.Restaurants.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// PATCH /admin/restaurants/:id
func (ctl *AdminController) UpdateRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := ctl.Restaurants.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		IsActive *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		rest.Name = *req.Name
	}
	if req.IsActive != nil {
		rest.IsActive = *req.IsActive
	}

	if err := ctl.Restaurants.Update(rest); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /admin/subscriptions/:id
func (ctl *AdminController) UpdateSubscription(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	sub, err := ctl.Subscriptions.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "subscription not found")
		return
	}

	var req struct {
		Plan        *string    `json:"plan"`
		Status      *string    `json:"status"`
		PeriodStart *time.Time `json:"periodStart"`
		PeriodEnd   *time.Time `json:"periodEnd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Plan != nil {
		if !entity.ValidPlan(*req.Plan) {
			resp.BadRequest(c, "unknown plan")
			return
		}
		sub.Plan = *req.Plan
	}
	if req.Status != nil {
		if !entity.ValidSubStatus(*req.Status) {
			resp.BadRequest(c, "unknown status")
			return
		}
		sub.Status = *req.Status
	}
	if req.PeriodStart != nil {
		sub.PeriodStart = req.PeriodStart
	}
	if req.PeriodEnd != nil {
		sub.PeriodEnd = req.PeriodEnd
	}

	if err := ctl.Subscriptions.Update(sub); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sub)
}

// GET /admin/stats returns all-time scan totals per tenant.
func (ctl *AdminController) Stats(c *gin.Context) {
	rests, err := ctl.Restaurants.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type row struct {
		RestaurantID uint   `json:"restaurantId"`
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		TotalScans   int64  `json:"totalScans"`
	}
	items := make([]row, 0, len(rests))
	for _, r := range rests {
		total, err := ctl.Scans.CountSince(r.ID, time.Time{})
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		items = append(items, row{RestaurantID: r.ID, Name: r.Name, Slug: r.Slug, TotalScans: total})
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/impersonate
func (ctl *AdminController) Impersonate(c *gin.Context) {
	var req struct {
		RestaurantID uint `json:"restaurantId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Restaurants.FindByID(req.RestaurantID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	token, err := utils.GenerateImpersonationToken(rest.ID, ctl.Cfg.JWTSecret, ctl.Cfg.ImpersonationTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	maxAge := int(ctl.Cfg.ImpersonationTTL.Seconds())
	c.SetCookie(middlewares.ImpersonationCookie, token, maxAge, "/", "", false, true)
	resp.OK(c, gin.H{"restaurantId": rest.ID, "slug": rest.Slug})
}

// DELETE /admin/impersonate
func (ctl *AdminController) StopImpersonating(c *gin.Context) {
	c.SetCookie(middlewares.ImpersonationCookie, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"message": "impersonation ended"})
}
