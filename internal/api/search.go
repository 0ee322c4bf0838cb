package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// SearchHandler serves the search and comparison endpoints.
type SearchHandler struct {
	svc      SearchRunner
	log      *logrus.Logger
	maxNodes int
}

// NewSearchHandler creates a SearchHandler with the given service and logger.
func NewSearchHandler(svc SearchRunner, log *logrus.Logger, maxNodes int) *SearchHandler {
	return &SearchHandler{svc: svc, log: log, maxNodes: maxNodes}
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(c *gin.Context) {
	req, ok := h.bindSearchRequest(c)
	if !ok {
		return
	}

	result, err := h.svc.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrUnknownAlgorithm) {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		h.log.WithError(err).Error("running search")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Compare handles POST /api/v1/search/compare.
func (h *SearchHandler) Compare(c *gin.Context) {
	req, ok := h.bindSearchRequest(c)
	if !ok {
		return
	}

	report, err := h.svc.Compare(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrUnknownAlgorithm) {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

			return
		}

		h.log.WithError(err).Error("comparing implementations")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, report)
}

// bindSearchRequest decodes and validates the shared search payload. The
// core assumes validated non-empty inputs, so everything is rejected here.
func (h *SearchHandler) bindSearchRequest(c *gin.Context) (models.SearchRequest, bool) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON: "+err.Error())

		return req, false
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return req, false
	}

	if len(req.Graph) > h.maxNodes {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, "graph exceeds maximum node count")

		return req, false
	}

	return req, true
}
