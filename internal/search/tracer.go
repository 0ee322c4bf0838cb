package search

import "github.com/pathtraceio/pathtrace/internal/models"

// tracer owns the per-invocation bookkeeping every algorithm shares: the
// visited order, the membership set, the parent map seeded with start, the
// discovery-tree edges and the step log. All algorithms report results in
// the same shape because they start from this same preamble.
type tracer struct {
	visited   []string
	seen      map[string]bool
	listed    map[string]bool
	parent    map[string]*string
	treeEdges []models.TreeEdge
	edgeIndex map[string]int // child -> position in treeEdges
	steps     []models.SearchStep
	trace     bool
}

func newTracer(start string, trace bool) *tracer {
	return &tracer{
		visited:   []string{},
		seen:      make(map[string]bool),
		listed:    make(map[string]bool),
		parent:    map[string]*string{start: nil},
		treeEdges: []models.TreeEdge{},
		edgeIndex: make(map[string]int),
		trace:     trace,
	}
}

// markSeen adds node to the membership set, reporting whether it was new.
// BFS marks nodes at discovery time; the other algorithms mark at closure.
func (t *tracer) markSeen(node string) bool {
	if t.seen[node] {
		return false
	}

	t.seen[node] = true

	return true
}

func (t *tracer) isSeen(node string) bool {
	return t.seen[node]
}

// appendVisited appends node to the visited order exactly once.
func (t *tracer) appendVisited(node string) {
	if t.listed[node] {
		return
	}

	t.listed[node] = true
	t.visited = append(t.visited, node)
}

// closeNode marks node as fully expanded and records it in visited order.
func (t *tracer) closeNode(node string) {
	t.markSeen(node)
	t.appendVisited(node)
}

func (t *tracer) hasParent(node string) bool {
	_, ok := t.parent[node]

	return ok
}

// setParent points child at parent in the discovery tree. Re-pointing an
// already-discovered child replaces its tree edge in place, so treeEdges
// stays exactly the edge set implied by the parent map, one edge per
// non-start key, in first-discovery order.
func (t *tracer) setParent(child, parent string) {
	p := parent
	t.parent[child] = &p

	if idx, ok := t.edgeIndex[child]; ok {
		t.treeEdges[idx] = models.TreeEdge{parent, child}

		return
	}

	t.edgeIndex[child] = len(t.treeEdges)
	t.treeEdges = append(t.treeEdges, models.TreeEdge{parent, child})
}

// record appends one step snapshot. Every container is copied on append so
// later mutation of the live state never retroactively changes the step.
func (t *tracer) record(action models.Action, node string, path, closed, frontier []string, extra map[string]float64) {
	if !t.trace {
		return
	}

	t.steps = append(t.steps, models.SearchStep{
		Index:     len(t.steps),
		Node:      node,
		Action:    action,
		Path:      cloneStrings(path),
		Closed:    cloneStrings(closed),
		Frontier:  cloneStrings(frontier),
		Parent:    cloneParent(t.parent),
		TreeEdges: cloneEdges(t.treeEdges),
		Extra:     extra,
	})
}

// result builds the terminal record. The live containers are handed over
// directly: the invocation owns them and never touches them again.
func (t *tracer) result(algorithm string, path []string, success bool) models.SearchResult {
	if path == nil {
		path = []string{}
	}

	return models.SearchResult{
		Path:      path,
		Visited:   t.visited,
		Success:   success,
		Algorithm: algorithm,
		Parent:    t.parent,
		TreeEdges: t.treeEdges,
		Steps:     t.steps,
	}
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}

func cloneParent(p map[string]*string) map[string]*string {
	out := make(map[string]*string, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

func cloneEdges(e []models.TreeEdge) []models.TreeEdge {
	out := make([]models.TreeEdge, len(e))
	copy(out, e)

	return out
}

// appendPath returns a fresh path with node appended, leaving the original
// untouched for entries still in the frontier.
func appendPath(path []string, node string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = node

	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
