package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
	"github.com/aigram-labs/aigram/service"
)

// BootstrapHandler handles the one-time seeding endpoint.
type BootstrapHandler struct {
	svc    *service.BootstrapService
	logger *logger.Logger
}

// NewBootstrapHandler creates a new bootstrap handler.
func NewBootstrapHandler(svc *service.BootstrapService, log *logger.Logger) *BootstrapHandler {
	return &BootstrapHandler{
		svc:    svc,
		logger: log,
	}
}

// Run invokes the seeder with defaults and returns the resulting counts.
func (h *BootstrapHandler) Run(c *gin.Context) {
	result, err := h.svc.Seed(c.Request.Context(), service.BootstrapOptions{})
	if err != nil {
		if errors.Is(err, data.ErrNotConfigured) {
			resp.Fail(c.Writer, resp.InternalServer("Database not configured"))
			return
		}
		h.logger.Error(c.Request.Context(), "bootstrap failed", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(err.Error()))
		return
	}

	resp.Success(c.Writer, result)
}
