package controllers

import (
	"errors"

	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/services"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves the owner panel's profile surface. The tenant
// is always the one resolved by the tenant middleware.
type RestaurantController struct {
	Repo    *repository.RestaurantRepository
	Service *services.RestaurantService
}

func NewRestaurantController(repo *repository.RestaurantRepository, svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Repo: repo, Service: svc}
}

// GET /panel/restaurant
func (ctl *RestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Repo.FindByID(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "impersonating": utils.Impersonating(c)})
}

// PATCH /panel/restaurant
func (ctl *RestaurantController) Update(c *gin.Context) {
	var req services.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.UpdateProfile(utils.CurrentRestaurantID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /panel/restaurant/qr-color
func (ctl *RestaurantController) UpdateQRColor(c *gin.Context) {
	var req struct {
		Color string `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.UpdateQRBackdropColor(utils.CurrentRestaurantID(c), req.Color)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"qrBackdropColor": rest.QRBackdropColor})
}
