package aggregation

import "github.com/repostats/repostats-go/internal/git"

// commitRecord is the internal per-commit accumulation target.
type commitRecord struct {
	timestamp int64
	message   string
	author    string
	stats     ExtStats
}

// CommitAggregator folds commits into per-commit, per-extension counters.
// It shares one SeenPaths across the whole traversal, so a path is credited
// as a new file only to the first commit that touched it.
type CommitAggregator struct {
	seen    *SeenPaths
	commits map[string]*commitRecord
}

// NewCommitAggregator creates an empty per-commit aggregator.
func NewCommitAggregator() *CommitAggregator {
	return &CommitAggregator{
		seen:    NewSeenPaths(),
		commits: make(map[string]*commitRecord),
	}
}

// Add records one commit. Counters start at zero for every commit: a commit
// with no eligible changes still gets an entry with an empty stats map.
func (a *CommitAggregator) Add(cs git.CommitChangeSet) {
	rec := &commitRecord{
		timestamp: cs.Commit.When.Unix(),
		message:   cs.Commit.Message,
		author:    cs.Commit.Author.String(),
		stats:     make(ExtStats),
	}
	a.commits[cs.Commit.SHA] = rec

	fold(rec.stats, a.seen, cs.Changes)
}

// AddAll folds a sequence of change sets in order.
func (a *CommitAggregator) AddAll(sets []git.CommitChangeSet) {
	for _, cs := range sets {
		a.Add(cs)
	}
}

// Result projects the accumulated records into the caller-visible shape.
func (a *CommitAggregator) Result() CommitStats {
	return projectCommits(a.commits)
}
