package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pathtraceio/pathtrace/internal/models"
)

// Example bundles a ready-to-run graph with endpoints, weights and
// heuristic values for the demo frontend.
type Example struct {
	Graph     models.Graph       `json:"graph"`
	Start     string             `json:"start"`
	Goal      string             `json:"goal"`
	Weights   map[string]float64 `json:"weights"`
	Heuristic map[string]float64 `json:"heuristic"`
}

// examples are the predefined demo graphs.
var examples = map[string]Example{
	"simple": {
		Graph: models.Graph{
			"A": {"B", "C"},
			"B": {"A", "D", "E"},
			"C": {"A", "F"},
			"D": {"B"},
			"E": {"B", "F"},
			"F": {"C", "E"},
		},
		Start: "A",
		Goal:  "F",
		Weights: map[string]float64{
			"A-B": 4, "A-C": 2, "B-D": 5, "B-E": 10, "C-F": 3, "E-F": 1,
		},
		Heuristic: map[string]float64{
			"A": 7, "B": 6, "C": 5, "D": 8, "E": 2, "F": 0,
		},
	},
	"complex": {
		Graph: models.Graph{
			"S": {"A", "B", "C"},
			"A": {"S", "D", "E"},
			"B": {"S", "F"},
			"C": {"S", "G"},
			"D": {"A", "H"},
			"E": {"A", "H"},
			"F": {"B", "I"},
			"G": {"C", "I"},
			"H": {"D", "E", "G"},
			"I": {"F", "G"},
		},
		Start: "S",
		Goal:  "I",
		Weights: map[string]float64{
			"S-A": 1, "S-B": 4, "S-C": 8, "A-D": 3, "A-E": 7, "B-F": 5,
			"C-G": 3, "D-H": 4, "E-H": 2, "F-I": 6, "G-I": 2, "H-G": 5,
		},
		Heuristic: map[string]float64{
			"S": 10, "A": 9, "B": 7, "C": 5, "D": 8, "E": 6, "F": 4,
			"G": 3, "H": 4, "I": 0,
		},
	},
}

// ExamplesHandler serves the predefined example graphs.
type ExamplesHandler struct{}

// NewExamplesHandler creates an ExamplesHandler.
func NewExamplesHandler() *ExamplesHandler {
	return &ExamplesHandler{}
}

// List handles GET /api/v1/examples.
func (h *ExamplesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, examples)
}
