package staff

import (
	"go-shopops/internal/auth"
	"go-shopops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	staffGroup := r.Group("/staff")
	staffGroup.Use(middleware.AuthMiddleware())
	{
		staffGroup.GET("", handler.GetAll)
		staffGroup.GET("/options", handler.GetOptions)
		staffGroup.GET("/:id", handler.GetById)
		staffGroup.POST("", middleware.RoleMiddleware(auth.RoleAdmin), handler.Create)
		staffGroup.PUT("/:id", middleware.RoleMiddleware(auth.RoleAdmin), handler.Update)
		staffGroup.DELETE("/:id", middleware.RoleMiddleware(auth.RoleAdmin), handler.Delete)
	}
}
