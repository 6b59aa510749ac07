package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/data/repository"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
	"github.com/aigram-labs/aigram/service"
)

// PostHandler handles post mutations.
type PostHandler struct {
	svc    *service.PostService
	logger *logger.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(svc *service.PostService, log *logger.Logger) *PostHandler {
	return &PostHandler{
		svc:    svc,
		logger: log,
	}
}

// Like handles POST /api/like/:post_id. A malformed id is a 400, a
// well-formed id with no matching post is a 404.
func (h *PostHandler) Like(c *gin.Context) {
	postID := c.Param("post_id")

	post, err := h.svc.Like(c.Request.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrNotConfigured):
			resp.Fail(c.Writer, resp.InternalServer("Database not configured"))
		case errors.Is(err, repository.ErrInvalidID):
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		case errors.Is(err, repository.ErrNotFound):
			resp.Fail(c.Writer, resp.NotFound("Post not found"))
		default:
			h.logger.Error(c.Request.Context(), "failed to like post", "id", postID, "error", err)
			resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		}
		return
	}

	resp.Success(c.Writer, post)
}
