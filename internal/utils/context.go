// internal/utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"
)

func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(int64); ok {
			return id, true
		}
	}
	return 0, false
}

func GetLoginFromContext(c *gin.Context) (string, bool) {
	if login, exists := c.Get("login"); exists {
		if loginStr, ok := login.(string); ok {
			return loginStr, true
		}
	}
	return "", false
}
