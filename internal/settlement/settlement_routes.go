package settlement

import (
	"go-shopops/internal/auth"
	"go-shopops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	settlementGroup := r.Group("/settlements")
	settlementGroup.Use(middleware.AuthMiddleware())
	{
		settlementGroup.GET("", handler.Compute)
		settlementGroup.POST("/cache/invalidate",
			middleware.RoleMiddleware(auth.RoleAdmin), handler.InvalidateCache)
	}
}
