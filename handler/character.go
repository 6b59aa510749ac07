package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
	"github.com/aigram-labs/aigram/service"
)

// CharacterHandler handles character listings.
type CharacterHandler struct {
	svc    *service.CharacterService
	logger *logger.Logger
}

// NewCharacterHandler creates a new character handler.
func NewCharacterHandler(svc *service.CharacterService, log *logger.Logger) *CharacterHandler {
	return &CharacterHandler{
		svc:    svc,
		logger: log,
	}
}

// List handles GET /api/characters?limit=50.
func (h *CharacterHandler) List(c *gin.Context) {
	characters, err := h.svc.List(c.Request.Context(), parseLimit(c, 50))
	if err != nil {
		if errors.Is(err, data.ErrNotConfigured) {
			resp.Fail(c.Writer, resp.InternalServer("Database not configured"))
			return
		}
		h.logger.Error(c.Request.Context(), "failed to list characters", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(err.Error()))
		return
	}
	resp.Success(c.Writer, characters)
}
