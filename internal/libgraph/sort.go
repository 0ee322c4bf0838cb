package libgraph

import (
	"sort"

	"github.com/pathtraceio/pathtrace/internal/models"
)

func sortedKeys(g models.Graph) []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
