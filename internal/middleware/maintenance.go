package middleware

import (
	"net/http"

	"cliprewards-backend/config"
	"cliprewards-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Maintenance short-circuits every API request with 503 while the
// maintenance flag is set. The message is what clients render as the
// maintenance banner.
func Maintenance(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.MaintenanceMode {
			c.JSON(http.StatusServiceUnavailable,
				utils.NewErrorResponse(http.StatusServiceUnavailable, cfg.MaintenanceMessage))
			c.Abort()
			return
		}
		c.Next()
	}
}
