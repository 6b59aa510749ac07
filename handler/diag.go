package handler

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
)

// maxCollectionNames caps the collection listing in the diagnostic payload.
const maxCollectionNames = 10

// DiagHandler reports connectivity status. It talks to the data layer
// directly and never fails; every error is folded into a status string.
type DiagHandler struct {
	data   *data.Data
	logger *logger.Logger
}

// NewDiagHandler creates a new diagnostic handler.
func NewDiagHandler(d *data.Data, log *logger.Logger) *DiagHandler {
	return &DiagHandler{
		data:   d,
		logger: log,
	}
}

// Test handles GET /test.
func (h *DiagHandler) Test(c *gin.Context) {
	response := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.data != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		names, err := h.data.ListCollections(c.Request.Context())
		if err != nil {
			response["database"] = fmt.Sprintf("⚠️ Connected but Error: %.50s", err.Error())
		} else {
			if len(names) > maxCollectionNames {
				names = names[:maxCollectionNames]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	resp.Success(c.Writer, response)
}

// envStatus reports whether an environment variable is set without exposing
// its value.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
