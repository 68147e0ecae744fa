package search

import (
	"net/http"

	"go-personnel/internal/shared/apperror"
	"go-personnel/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("search.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Search(c *gin.Context) {
	field := c.Query("field")
	value := c.Query("value")

	results, err := h.service.Search(c.Request.Context(), field, value)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("search request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, results)
}
