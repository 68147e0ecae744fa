package app

import (
	"go-personnel/internal/auth"
	"go-personnel/internal/employee"
	"go-personnel/internal/messaging/kafka"
	"go-personnel/internal/middleware"
	"go-personnel/internal/refdata"
	"go-personnel/internal/search"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	refdataRepo := refdata.NewRepository(gormDB)
	searchRepo := search.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, outboxRepo)
	refdataService := refdata.NewService(refdataRepo, rdb)
	searchService := search.NewService(searchRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	refdataHandler := refdata.NewHandler(refdataService)
	searchHandler := search.NewHandler(searchService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		search.RegisterRoutes(api, searchHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rdb, logger)
		refdata.RegisterRoutes(api, refdataHandler)
	}

	return nil
}
