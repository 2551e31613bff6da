package job

import (
	"go-shopops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	jobGroup := r.Group("/jobs")
	jobGroup.Use(middleware.AuthMiddleware())
	jobGroup.Use(middleware.RateLimitByUser(rate.Limit(10), 20))
	{
		jobGroup.GET("", handler.GetAll)
		jobGroup.GET("/:id", handler.GetById)
		jobGroup.POST("", middleware.Idempotency(rdb), handler.Create)
		jobGroup.PUT("/:id", handler.Update)
		jobGroup.POST("/:id/complete", middleware.Idempotency(rdb), handler.Complete)
		jobGroup.POST("/:id/reopen", handler.Reopen)
		jobGroup.DELETE("/:id", handler.Delete)
	}
}
