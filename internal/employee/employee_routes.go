package employee

import (
	"go-personnel/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
