package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRestaurantID is the tenant resolved for this request: the caller's
// own restaurant, or the impersonated one when an admin presents a token.
func CurrentRestaurantID(c *gin.Context) uint {
	v, _ := c.Get("restaurantId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

// Impersonating reports whether the tenant in context was substituted by an
// admin impersonation token.
func Impersonating(c *gin.Context) bool {
	v, _ := c.Get("impersonating")
	b, ok := v.(bool)
	return ok && b
}
