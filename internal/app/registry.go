package app

import (
	"database/sql"

	"go-shopops/internal/auth"
	"go-shopops/internal/inventory"
	"go-shopops/internal/job"
	"go-shopops/internal/messaging/kafka"
	"go-shopops/internal/settlement"
	"go-shopops/internal/staff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	inventoryRepo := inventory.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	staffService := staff.NewService(staffRepo, rdb)
	jobService := job.NewServiceWithOutbox(db, jobRepo, outboxRepo)
	inventoryService := inventory.NewService(inventoryRepo)

	rules := settlement.RulesFromEnv()
	aggregator := settlement.NewAggregator(
		jobRepo, staffRepo, inventoryRepo,
		settlement.NewRedisCache(rdb),
		rules,
	)
	settlementService := settlement.NewService(aggregator, settlement.NewCalculator(rules))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	staffHandler := staff.NewHandler(staffService)
	jobHandler := job.NewHandler(jobService, rdb)
	inventoryHandler := inventory.NewHandler(inventoryService)
	settlementHandler := settlement.NewHandler(settlementService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		staff.RegisterRoutes(api, staffHandler)
		job.RegisterRoutes(api, jobHandler, rdb)
		inventory.RegisterRoutes(api, inventoryHandler)
		settlement.RegisterRoutes(api, settlementHandler)
	}

	return nil
}
