package middlewares

import (
	"net/http"

	"qrmenu-backend/entity"
	"qrmenu-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMiddleware consults the allow-list table; there is no role claim in
// the session token.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		var count int64
		if err := db.Model(&entity.AdminUser{}).Where("user_id = ?", userID).Count(&count).Error; err != nil || count == 0 {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
