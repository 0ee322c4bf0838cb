package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AlgorithmsHandler serves the algorithm discovery endpoint.
type AlgorithmsHandler struct {
	svc AlgorithmLister
}

// NewAlgorithmsHandler creates an AlgorithmsHandler.
func NewAlgorithmsHandler(svc AlgorithmLister) *AlgorithmsHandler {
	return &AlgorithmsHandler{svc: svc}
}

// List handles GET /api/v1/algorithms. Callers use it to validate input
// before dispatching a search.
func (h *AlgorithmsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"algorithms": h.svc.Algorithms()})
}
