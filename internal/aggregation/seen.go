package aggregation

// SeenPaths records every path observed as changed during one traversal.
// It is owned by a single traversal and shared between all of its buckets,
// never reset per commit: a path counts as a new file only on the commit
// where it first appears in canonical order.
type SeenPaths struct {
	paths map[string]struct{}
}

// NewSeenPaths returns an empty seen-path set.
func NewSeenPaths() *SeenPaths {
	return &SeenPaths{paths: make(map[string]struct{})}
}

// Observe inserts the path and reports whether this was its first
// appearance. The check and insert are a single step, so a path can never be
// counted as new twice.
func (s *SeenPaths) Observe(path string) bool {
	if _, ok := s.paths[path]; ok {
		return false
	}
	s.paths[path] = struct{}{}
	return true
}

// Len returns the number of distinct paths observed so far.
func (s *SeenPaths) Len() int {
	return len(s.paths)
}
