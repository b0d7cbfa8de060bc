// Package aggregation folds per-commit file changes into per-extension change
// volume counters, bucketed by calendar month or by commit.
package aggregation

import "github.com/repostats/repostats-go/internal/git"

// FileStats holds the change volume counters for one extension within one
// bucket. Lines is kept equal to Additions - Deletions after every update.
type FileStats struct {
	Lines         int
	Files         int
	Additions     int
	Deletions     int
	Modifications int
	Repos         int
}

// ExtStats maps extension tokens to their counters.
type ExtStats map[string]*FileStats

func (s ExtStats) get(ext string) *FileStats {
	st, ok := s[ext]
	if !ok {
		st = &FileStats{}
		s[ext] = st
	}
	return st
}

// fold applies one commit's changes to the destination bucket. First-seen
// paths increment Files via the shared seen set; every change with at least
// one line delta contributes its line counts plus exactly one modification.
func fold(dst ExtStats, seen *SeenPaths, changes []git.FileChange) {
	for _, ch := range changes {
		first := seen.Observe(ch.Path)

		// An already-seen path with no line deltas increments nothing;
		// materializing an all-zero entry for it would alter the output.
		if !first && ch.LinesAdded == 0 && ch.LinesDeleted == 0 {
			continue
		}

		st := dst.get(ch.Ext)
		if first {
			st.Files++
		}

		if ch.LinesAdded == 0 && ch.LinesDeleted == 0 {
			continue
		}
		st.Additions += ch.LinesAdded
		st.Deletions += ch.LinesDeleted
		st.Lines = st.Additions - st.Deletions
		st.Modifications++
	}
}
