package routes

import (
	"qrmenu-backend/configs"
	"qrmenu-backend/controllers"
	"qrmenu-backend/middlewares"
	"qrmenu-backend/repository"
	"qrmenu-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	prodRepo := repository.NewProductRepository(db)
	scanRepo := repository.NewScanRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(restRepo, catRepo, prodRepo)
	statsSvc := services.NewStatsService(scanRepo)
	translateSvc := services.NewTranslateService(cfg.TranslatePrimaryURL, cfg.TranslateFallbackURL, cfg.TranslateBatchDelay, log)
	scans := services.NewScanRecorder(scanRepo, log)

	// Controllers
	authCtrl := controllers.NewAuthController(cfg, userRepo, restSvc)
	restCtrl := controllers.NewRestaurantController(restRepo, restSvc)
	catCtrl := controllers.NewCategoryController(catRepo)
	prodCtrl := controllers.NewProductController(prodRepo, catRepo)
	statsCtrl := controllers.NewStatsController(statsSvc)
	qrCtrl := controllers.NewQRController(restRepo, cfg, log)
	translateCtrl := controllers.NewTranslateController(translateSvc)
	publicCtrl := controllers.NewPublicController(restRepo, menuSvc, scans)
	seoCtrl := controllers.NewSEOController(restRepo, cfg)
	adminCtrl := controllers.NewAdminController(restRepo, subRepo, scanRepo, cfg)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public menu
	r.GET("/restorant/:slug", publicCtrl.MenuPage)
	r.GET("/restorant/:slug/category/:categoryId", publicCtrl.CategoryPage)
	r.GET("/api/menu/:slug", publicCtrl.MenuJSON)
	r.GET("/api/menu/:slug/category/:categoryId", publicCtrl.CategoryJSON)
	r.GET("/robots.txt", seoCtrl.Robots)
	r.GET("/sitemap.xml", seoCtrl.Sitemap)

	// Owner panel; tenant resolved once per request (own restaurant, or the
	// impersonated one for admins)
	panel := r.Group("/panel",
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.TenantMiddleware(db, cfg.JWTSecret))
	{
		panel.GET("/restaurant", restCtrl.Get)
		panel.PATCH("/restaurant", restCtrl.Update)
		panel.PATCH("/restaurant/qr-color", restCtrl.UpdateQRColor)

		panel.GET("/categories", catCtrl.List)
		panel.POST("/categories", catCtrl.Create)
		panel.PATCH("/categories/:id", catCtrl.Update)
		panel.DELETE("/categories/:id", catCtrl.Delete)

		panel.GET("/products", prodCtrl.List)
		panel.POST("/products", prodCtrl.Create)
		panel.PATCH("/products/:id", prodCtrl.Update)
		panel.PATCH("/products/:id/price", prodCtrl.UpdatePrice)
		panel.DELETE("/products/:id", prodCtrl.Delete)

		panel.GET("/stats", statsCtrl.Dashboard)
		panel.GET("/qrcode", qrCtrl.Render)

		panel.POST("/translate", translateCtrl.Translate)
		panel.POST("/translate/batch", translateCtrl.TranslateBatch)
	}

	// Admin console (allow-list gated)
	admin := r.Group("/admin",
		middlewares.AuthMiddleware(cfg.JWTSecret),
		middlewares.AdminMiddleware(db))
	{
		admin.GET("/restaurants", adminCtrl.ListRestaurants)
		admin.PATCH("/restaurants/:id", adminCtrl.UpdateRestaurant)
		admin.PATCH("/subscriptions/:id", adminCtrl.UpdateSubscription)
		admin.GET("/stats", adminCtrl.Stats)
		admin.POST("/impersonate", adminCtrl.Impersonate)
		admin.DELETE("/impersonate", adminCtrl.StopImpersonating)
	}
}
