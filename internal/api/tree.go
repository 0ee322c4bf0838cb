package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathtraceio/pathtrace/internal/models"
	"github.com/pathtraceio/pathtrace/internal/search"
)

// TreeHandler serves the state-space tree endpoint.
type TreeHandler struct {
	svc      TreeBuilder
	log      *logrus.Logger
	maxDepth int
	maxNodes int
}

// NewTreeHandler creates a TreeHandler with the given service and limits.
func NewTreeHandler(svc TreeBuilder, log *logrus.Logger, maxDepth, maxNodes int) *TreeHandler {
	return &TreeHandler{svc: svc, log: log, maxDepth: maxDepth, maxNodes: maxNodes}
}

// Generate handles POST /api/v1/tree.
func (h *TreeHandler) Generate(c *gin.Context) {
	var req models.TreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON: "+err.Error())

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	if len(req.Graph) > h.maxNodes {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "graph exceeds maximum node count")

		return
	}

	depth := search.DefaultTreeDepth
	if req.MaxDepth != nil {
		depth = *req.MaxDepth
	}

	if depth > h.maxDepth {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "max_depth exceeds server limit")

		return
	}

	c.JSON(http.StatusOK, h.svc.Tree(c.Request.Context(), req, depth))
}
