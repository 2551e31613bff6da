package inventory

import (
	"go-shopops/internal/auth"
	"go-shopops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	parts := r.Group("/parts")
	parts.Use(middleware.AuthMiddleware())
	{
		parts.GET("/catalog", handler.Catalog)
		parts.GET("/outbound", handler.ListByRange)
		parts.GET("/outbound/task/:taskId", handler.ListByTask)
		parts.POST("/outbound", handler.Issue)
		parts.POST("/outbound/:id/void", middleware.RoleMiddleware(auth.RoleAdmin), handler.Void)
	}
}
