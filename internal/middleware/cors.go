// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS exposes the alert and pagination headers so browser clients can
// read them from cross-origin responses.
func CORS(appName string, allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Location",
			"Link",
			"X-Total-Count",
			"X-" + appName + "-alert",
			"X-" + appName + "-params",
			"X-" + appName + "-error",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
