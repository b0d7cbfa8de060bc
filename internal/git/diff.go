package git

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// changesForCommit computes the eligible file changes of a commit against its
// first parent. Root commits are diffed against the empty tree; merge commits
// use only their first parent, so other parents contribute nothing.
func (r *HistoryReader) changesForCommit(ctx context.Context, c *object.Commit) ([]FileChange, error) {
	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, &DiffError{Commit: c.Hash.String(), Err: err}
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, &DiffError{Commit: c.Hash.String(), Err: err}
		}
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}

	changes, err := object.DiffTreeContext(ctx, parentTree, tree)
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}

	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return nil, &DiffError{Commit: c.Hash.String(), Err: err}
	}

	var out []FileChange

	for _, filePatch := range patch.FilePatches() {
		from, to := filePatch.Files()

		var path string
		var kind ChangeKind

		switch {
		case from == nil && to != nil:
			path = to.Path()
			kind = ChangeKindAdded
		case from != nil && to == nil:
			path = from.Path()
			kind = ChangeKindDeleted
		default:
			if to != nil {
				path = to.Path()
			} else if from != nil {
				path = from.Path()
			}
			kind = ChangeKindModified
		}

		if path == "" {
			continue
		}
		path = strings.ReplaceAll(path, "\\", "/")

		// Ineligible paths are dropped entirely: no counters, no
		// first-seen bookkeeping.
		ext := r.classifyPath(path)
		if ext == "" {
			continue
		}

		var added, deleted int
		for _, chunk := range filePatch.Chunks() {
			switch chunk.Type() {
			case fdiff.Add:
				added += chunkLineCount(chunk.Content())
			case fdiff.Delete:
				deleted += chunkLineCount(chunk.Content())
			}
		}

		out = append(out, FileChange{
			Path:         path,
			Ext:          ext,
			LinesAdded:   added,
			LinesDeleted: deleted,
			Kind:         kind,
		})
	}

	return out, nil
}

// classifyPath returns the extension token for an eligible path, or "" when
// the path should be dropped from all further processing.
func (r *HistoryReader) classifyPath(path string) string {
	ext := r.allow.Classify(path)
	if ext == "" {
		return ""
	}
	if !r.matchesFilters(path) {
		return ""
	}
	return ext
}

// matchesFilters checks the path against the include/exclude globs. Patterns
// are validated at reader construction, so match errors cannot occur here.
func (r *HistoryReader) matchesFilters(path string) bool {
	for _, pattern := range r.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}
	if len(r.opts.Include) == 0 {
		return true
	}
	for _, pattern := range r.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// chunkLineCount counts the lines in a diff chunk. Each line in an Add or
// Delete chunk corresponds to exactly one "+" or "-" line of the underlying
// patch; a trailing newline does not start an extra line.
func chunkLineCount(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
