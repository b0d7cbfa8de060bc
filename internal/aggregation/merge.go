package aggregation

// MergeMonthly combines monthly histories from separate analysis runs into
// one, summing every counter per month and extension. Inputs are not
// modified.
func MergeMonthly(histories ...MonthlyStats) MonthlyStats {
	merged := make(MonthlyStats)
	for _, history := range histories {
		for month, exts := range history {
			dst, ok := merged[month]
			if !ok {
				dst = make(map[string]FileCounts, len(exts))
				merged[month] = dst
			}
			for ext, c := range exts {
				acc := dst[ext]
				acc.Lines += c.Lines
				acc.Files += c.Files
				acc.Additions += c.Additions
				acc.Deletions += c.Deletions
				acc.Modifications += c.Modifications
				acc.Repos += c.Repos
				dst[ext] = acc
			}
		}
	}
	return merged
}

// StampRepos returns a copy of the history with every extension entry marked
// as coming from a single repository. Single-repository analysis always
// reports repos as zero; stamping before a merge makes the merged history
// count contributing repositories per month and extension.
func StampRepos(history MonthlyStats) MonthlyStats {
	out := make(MonthlyStats, len(history))
	for month, exts := range history {
		m := make(map[string]FileCounts, len(exts))
		for ext, c := range exts {
			c.Repos = 1
			m[ext] = c
		}
		out[month] = m
	}
	return out
}
