package aggregation

// Caller-visible result shapes. The JSON field names and nesting are part of
// the output contract; projection is purely structural.

// FileCounts is the external counter set for one extension in a month bucket.
type FileCounts struct {
	Lines         int `json:"lines"`
	Files         int `json:"files"`
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	Repos         int `json:"repos"`
}

// MonthlyStats maps month keys to extension tokens to counters.
type MonthlyStats map[string]map[string]FileCounts

// CommitCounts is the external counter set for one extension within a single
// commit. Per-commit results carry no repos counter.
type CommitCounts struct {
	Lines         int `json:"lines"`
	Files         int `json:"files"`
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
}

// CommitDetail is the external record for one commit.
type CommitDetail struct {
	Timestamp int64                   `json:"timestamp"`
	Message   string                  `json:"message"`
	Author    string                  `json:"author"`
	Stats     map[string]CommitCounts `json:"stats"`
}

// CommitStats maps commit identifiers (hex) to their details.
type CommitStats map[string]CommitDetail

func projectMonths(months map[string]ExtStats) MonthlyStats {
	out := make(MonthlyStats, len(months))
	for month, exts := range months {
		m := make(map[string]FileCounts, len(exts))
		for ext, st := range exts {
			m[ext] = FileCounts{
				Lines:         st.Lines,
				Files:         st.Files,
				Additions:     st.Additions,
				Deletions:     st.Deletions,
				Modifications: st.Modifications,
				Repos:         st.Repos,
			}
		}
		out[month] = m
	}
	return out
}

func projectCommits(commits map[string]*commitRecord) CommitStats {
	out := make(CommitStats, len(commits))
	for sha, rec := range commits {
		stats := make(map[string]CommitCounts, len(rec.stats))
		for ext, st := range rec.stats {
			stats[ext] = CommitCounts{
				Lines:         st.Lines,
				Files:         st.Files,
				Additions:     st.Additions,
				Deletions:     st.Deletions,
				Modifications: st.Modifications,
			}
		}
		out[sha] = CommitDetail{
			Timestamp: rec.timestamp,
			Message:   rec.message,
			Author:    rec.author,
			Stats:     stats,
		}
	}
	return out
}
