package controllers

import (
	"time"

	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/services"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Service *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Service: svc}
}

// GET /panel/stats
func (ctl *StatsController) Dashboard(c *gin.Context) {
	stats, err := ctl.Service.Summarize(utils.CurrentRestaurantID(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
