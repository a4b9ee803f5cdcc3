package middlewares

import (
	"net/http"

	"qrmenu-backend/entity"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const ImpersonationCookie = "qrmenu_impersonate"

// TenantMiddleware resolves the effective restaurant for a panel request in
// one place: normally the caller's own restaurant; when the caller is on the
// admin allow-list and presents a valid impersonation cookie, the impersonated
// one. Handlers only ever read utils.CurrentRestaurantID.
func TenantMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		if cookie, err := c.Cookie(ImpersonationCookie); err == nil && cookie != "" {
			var count int64
			db.Model(&entity.AdminUser{}).Where("user_id = ?", userID).Count(&count)
			if count > 0 {
				if restID, err := utils.ParseImpersonationToken(cookie, secret); err == nil {
					var rest entity.Restaurant
					if err := db.First(&rest, restID).Error; err == nil {
						c.Set("restaurantId", rest.ID)
						c.Set("impersonating", true)
						c.Next()
						return
					}
				}
			}
			// expired/invalid token or non-admin caller: fall through to own tenant
		}

		var rest entity.Restaurant
		if err := db.Where("owner_id = ?", userID).First(&rest).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "restaurant not found"})
			c.Abort()
			return
		}
		c.Set("restaurantId", rest.ID)
		c.Next()
	}
}
