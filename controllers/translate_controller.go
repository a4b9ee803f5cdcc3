package controllers

import (
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/services"

	"github.com/gin-gonic/gin"
)

type TranslateController struct {
	Service *services.TranslateService
}

func NewTranslateController(svc *services.TranslateService) *TranslateController {
	return &TranslateController{Service: svc}
}

// POST /panel/translate
func (ctl *TranslateController) Translate(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Service.Translate(req.Text)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"translatedText": out})
}

// POST /panel/translate/batch
func (ctl *TranslateController) TranslateBatch(c *gin.Context) {
	var req struct {
		Items []services.BatchItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.OK(c, gin.H{"items": ctl.Service.TranslateBatch(req.Items)})
}
