package aggregation

import (
	"fmt"
	"time"

	"github.com/repostats/repostats-go/internal/git"
)

// HistoryAggregator folds commits into per-month, per-extension counters.
// Change sets must be added in canonical traversal order.
type HistoryAggregator struct {
	seen   *SeenPaths
	months map[string]ExtStats
}

// NewHistoryAggregator creates an empty whole-history aggregator.
func NewHistoryAggregator() *HistoryAggregator {
	return &HistoryAggregator{
		seen:   NewSeenPaths(),
		months: make(map[string]ExtStats),
	}
}

// Add folds one commit's changes into its month bucket. Commits with no
// eligible changes create no bucket.
func (a *HistoryAggregator) Add(cs git.CommitChangeSet) {
	if len(cs.Changes) == 0 {
		return
	}

	key := MonthKey(cs.Commit.When)
	bucket, ok := a.months[key]
	if !ok {
		bucket = make(ExtStats)
		a.months[key] = bucket
	}

	fold(bucket, a.seen, cs.Changes)

	// Possible when every change was an already-counted path with no line
	// deltas; such a commit leaves no trace in the output.
	if len(bucket) == 0 {
		delete(a.months, key)
	}
}

// AddAll folds a sequence of change sets in order.
func (a *HistoryAggregator) AddAll(sets []git.CommitChangeSet) {
	for _, cs := range sets {
		a.Add(cs)
	}
}

// Result projects the accumulated counters into the caller-visible shape.
func (a *HistoryAggregator) Result() MonthlyStats {
	return projectMonths(a.months)
}

// MonthKey derives the month bucket key from a commit author timestamp
// interpreted in UTC. The format ("2024-03", "2024-12") is part of the
// output contract.
func MonthKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%d-%02d", u.Year(), int(u.Month()))
}
