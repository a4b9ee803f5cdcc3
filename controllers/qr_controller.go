package controllers

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"qrmenu-backend/configs"
	"qrmenu-backend/pkg/qr"
	"qrmenu-backend/pkg/resp"
	"qrmenu-backend/repository"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QRController struct {
	Repo *repository.RestaurantRepository
	Cfg  *configs.Config
	Log  *zap.Logger

	client *http.Client
}

func NewQRController(repo *repository.RestaurantRepository, cfg *configs.Config, log *zap.Logger) *QRController {
	return &QRController{
		Repo:   repo,
		Cfg:    cfg,
		Log:    log,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// fetchLogo loads and decodes the tenant's logo. Any failure degrades to a
// plain code; the error is logged, never surfaced.
func (ctl *QRController) fetchLogo(url string) image.Image {
	if url == "" {
		return nil
	}
	res, err := ctl.client.Get(url)
	if err != nil {
		ctl.Log.Warn("qr logo fetch failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		ctl.Log.Warn("qr logo fetch failed", zap.String("url", url), zap.Int("status", res.StatusCode))
		return nil
	}
	img, _, err := image.Decode(res.Body)
	if err != nil {
		ctl.Log.Warn("qr logo decode failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	return img
}

// GET /panel/qrcode?size=
func (ctl *QRController) Render(c *gin.Context) {
	rest, err := ctl.Repo.FindByID(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "512"))
	if size < 128 || size > 2048 {
		size = 512
	}

	publicURL := fmt.Sprintf("%s/restorant/%s", ctl.Cfg.PublicBaseURL, rest.Slug)
	img, err := qr.Render(publicURL, qr.Options{
		Size:     size,
		Backdrop: rest.QRBackdropColor,
		Logo:     ctl.fetchLogo(rest.LogoURL),
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.Header("Content-Type", "image/png")
	if err := png.Encode(c.Writer, img); err != nil {
		ctl.Log.Warn("qr png encode failed", zap.Error(err))
	}
}
