package refdata

import (
	"go-personnel/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/reference-data",
		middleware.AuthMiddleware(),
		middleware.RateLimitByUser(5, 20),
		handler.GetAll,
	)
}
