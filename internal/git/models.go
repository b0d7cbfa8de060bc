package git

import (
	"time"

	"github.com/repostats/repostats-go/internal/authors"
	"github.com/repostats/repostats-go/internal/classify"
)

// CommitInfo represents minimal information about a Git commit.
type CommitInfo struct {
	SHA     string
	When    time.Time // author timestamp
	Author  AuthorInfo
	Message string // raw, untrimmed commit message
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// String returns the canonical "Name <email>" form used for filtering and
// for per-commit output.
func (a AuthorInfo) String() string {
	return authors.Format(a.Name, a.Email)
}

// FileChange represents one eligible changed path within a commit.
type FileChange struct {
	Path         string // posix-style, forward-slash separated
	Ext          string // normalized extension token, e.g. ".go"
	LinesAdded   int
	LinesDeleted int
	Kind         ChangeKind
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// CommitChangeSet bundles a commit with its eligible file changes. Changes is
// empty for commits that touched no eligible path; such commits still appear
// so that per-commit aggregation can record them.
type CommitChangeSet struct {
	Commit  CommitInfo
	Changes []FileChange
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath   string
	Authors    *authors.Matcher   // nil means match all
	Extensions classify.Allowlist // nil means classify.DefaultAllowlist()
	Include    []string           // glob patterns to include
	Exclude    []string           // glob patterns to exclude
	Workers    int                // parallel diff computations; <=1 is sequential

	// OnProgress, when set, is called once per enumerated commit with the
	// number of commits handled so far and the total. It must not affect
	// aggregation results.
	OnProgress func(completed, total int)
}
