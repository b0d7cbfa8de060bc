package aggregation

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/repostats/repostats-go/internal/git"
)

// --- Generators ---

var rapidPaths = []string{
	"a.py", "b.py", "src/c.py", "d.md", "docs/e.md",
	"f.go", "internal/g.go", "h.rs", "web/i.ts", "j.json",
}

func genChangeSets() *rapid.Generator[[]git.CommitChangeSet] {
	return rapid.Custom(func(t *rapid.T) []git.CommitChangeSet {
		count := rapid.IntRange(0, 30).Draw(t, "commits")
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		sets := make([]git.CommitChangeSet, count)
		for i := 0; i < count; i++ {
			fileCount := rapid.IntRange(0, 5).Draw(t, fmt.Sprintf("files%d", i))
			changes := make([]git.FileChange, 0, fileCount)
			for j := 0; j < fileCount; j++ {
				path := rapid.SampledFrom(rapidPaths).Draw(t, fmt.Sprintf("path%d_%d", i, j))
				added := rapid.IntRange(0, 50).Draw(t, fmt.Sprintf("add%d_%d", i, j))
				deleted := rapid.IntRange(0, 50).Draw(t, fmt.Sprintf("del%d_%d", i, j))
				changes = append(changes, change(path, added, deleted))
			}
			when := base.AddDate(0, 0, rapid.IntRange(0, 400).Draw(t, fmt.Sprintf("day%d", i)))
			sets[i] = commitAt(fmt.Sprintf("c%03d", i), when, changes...)
		}
		return sets
	})
}

// --- Property Tests ---

// Every bucket keeps lines == additions - deletions after every single
// update, not just at the end of a run.
func TestRapidHistory_LinesInvariantAfterEveryCommit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sets := genChangeSets().Draw(t, "sets")

		agg := NewHistoryAggregator()
		for _, cs := range sets {
			agg.Add(cs)

			for month, exts := range agg.Result() {
				for ext, c := range exts {
					if c.Lines != c.Additions-c.Deletions {
						t.Fatalf("%s %s: lines %d != additions %d - deletions %d",
							month, ext, c.Lines, c.Additions, c.Deletions)
					}
					if c.Additions < 0 || c.Deletions < 0 || c.Files < 0 || c.Modifications < 0 {
						t.Fatalf("%s %s: negative counter: %+v", month, ext, c)
					}
				}
			}
		}
	})
}

// The files counters across all buckets sum to the number of distinct paths
// ever touched: each path is credited exactly once.
func TestRapidHistory_FilesCountDistinctPaths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sets := genChangeSets().Draw(t, "sets")

		distinct := make(map[string]struct{})
		for _, cs := range sets {
			for _, ch := range cs.Changes {
				distinct[ch.Path] = struct{}{}
			}
		}

		agg := NewHistoryAggregator()
		agg.AddAll(sets)

		totalFiles := 0
		for _, exts := range agg.Result() {
			for _, c := range exts {
				totalFiles += c.Files
			}
		}
		if totalFiles != len(distinct) {
			t.Fatalf("files total %d != distinct paths %d", totalFiles, len(distinct))
		}
		if agg.seen.Len() != len(distinct) {
			t.Fatalf("seen set size %d != distinct paths %d", agg.seen.Len(), len(distinct))
		}
	})
}

// Monthly and per-commit aggregation are two projections of the same fold:
// their counter totals agree for any input.
func TestRapidHistoryAndCommits_TotalsAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sets := genChangeSets().Draw(t, "sets")

		history := NewHistoryAggregator()
		history.AddAll(sets)
		commits := NewCommitAggregator()
		commits.AddAll(sets)

		type totals struct{ files, additions, deletions, modifications int }

		var h totals
		for _, exts := range history.Result() {
			for _, c := range exts {
				h.files += c.Files
				h.additions += c.Additions
				h.deletions += c.Deletions
				h.modifications += c.Modifications
			}
		}

		var p totals
		for _, detail := range commits.Result() {
			for _, c := range detail.Stats {
				p.files += c.Files
				p.additions += c.Additions
				p.deletions += c.Deletions
				p.modifications += c.Modifications
			}
		}

		if h != p {
			t.Fatalf("history totals %+v != per-commit totals %+v", h, p)
		}
	})
}
