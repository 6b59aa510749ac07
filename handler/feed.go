package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
	"github.com/aigram-labs/aigram/service"
)

// FeedHandler handles the hydrated feed and story timelines.
type FeedHandler struct {
	svc    *service.FeedService
	logger *logger.Logger
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(svc *service.FeedService, log *logger.Logger) *FeedHandler {
	return &FeedHandler{
		svc:    svc,
		logger: log,
	}
}

// Feed handles GET /api/feed?limit=25.
func (h *FeedHandler) Feed(c *gin.Context) {
	items, err := h.svc.Feed(c.Request.Context(), parseLimit(c, 25))
	if err != nil {
		h.fail(c, "failed to get feed", err)
		return
	}
	resp.Success(c.Writer, items)
}

// Stories handles GET /api/stories?limit=20.
func (h *FeedHandler) Stories(c *gin.Context) {
	items, err := h.svc.Stories(c.Request.Context(), parseLimit(c, 20))
	if err != nil {
		h.fail(c, "failed to get stories", err)
		return
	}
	resp.Success(c.Writer, items)
}

// fail maps read-path errors: unconfigured store gets the uniform message,
// everything else surfaces the error text with a 500.
func (h *FeedHandler) fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, data.ErrNotConfigured) {
		resp.Fail(c.Writer, resp.InternalServer("Database not configured"))
		return
	}
	h.logger.Error(c.Request.Context(), msg, "error", err)
	resp.Fail(c.Writer, resp.InternalServer(err.Error()))
}
