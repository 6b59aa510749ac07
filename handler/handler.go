// Package handler exposes the HTTP surface of the feed backend.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
	"github.com/aigram-labs/aigram/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Bootstrap *BootstrapHandler
	Feed      *FeedHandler
	Character *CharacterHandler
	Post      *PostHandler
	Diag      *DiagHandler
	logger    *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers
// initialized.
func NewHandler(svc *service.Service, d *data.Data, log *logger.Logger) *Handler {
	return &Handler{
		Bootstrap: NewBootstrapHandler(svc.Bootstrap, log),
		Feed:      NewFeedHandler(svc.Feed, log),
		Character: NewCharacterHandler(svc.Character, log),
		Post:      NewPostHandler(svc.Post, log),
		Diag:      NewDiagHandler(d, log),
		logger:    log,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/test", h.Diag.Test)

	api := r.Group("/api")
	{
		api.GET("/bootstrap", h.Bootstrap.Run)
		api.GET("/feed", h.Feed.Feed)
		api.GET("/stories", h.Feed.Stories)
		api.GET("/characters", h.Character.List)
		api.POST("/like/:post_id", h.Post.Like)
	}
}

// root reports liveness.
func (h *Handler) root(c *gin.Context) {
	resp.Success(c.Writer, map[string]string{"message": "AIgram Backend Running"})
}

// parseLimit reads the limit query parameter, falling back to the endpoint
// default. No upper bound is enforced.
func parseLimit(c *gin.Context, def int64) int64 {
	raw := c.DefaultQuery("limit", strconv.FormatInt(def, 10))
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}
