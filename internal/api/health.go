package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathtraceio/pathtrace/internal/ws"
)

// HealthHandler serves liveness checks.
type HealthHandler struct {
	hub     *ws.Hub
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(hub *ws.Hub, version string) *HealthHandler {
	return &HealthHandler{hub: hub, version: version}
}

// Liveness handles GET /api/v1/health. The engine has no external
// dependencies, so liveness is the whole story.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := gin.H{
		"status":  "ok",
		"version": h.version,
	}

	if h.hub != nil {
		resp["ws_clients"] = h.hub.Count()
	}

	c.JSON(http.StatusOK, resp)
}
