package output

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleHistoryWriter writes monthly history reports to the console.
type ConsoleHistoryWriter struct{}

// Write outputs the monthly history report as a table, months and extensions
// sorted.
func (w *ConsoleHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, closeFn, err := openOutput(options)
	if err != nil {
		return err
	}
	defer closeFn()

	color.New(color.FgGreen).Fprintln(out, "Monthly Change History")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Months: %d\n\n", len(report.Months))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Month\tExt\tLines\tFiles\tAdditions\tDeletions\tModifications")

	for _, month := range sortedKeys(report.Months) {
		exts := report.Months[month]
		for _, ext := range sortedKeys(exts) {
			c := exts[ext]
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
				month, ext, c.Lines, c.Files, c.Additions, c.Deletions, c.Modifications)
		}
	}

	return tw.Flush()
}

// ConsoleCommitWriter writes per-commit reports to the console.
type ConsoleCommitWriter struct{}

// Write outputs the per-commit report, oldest commit first.
func (w *ConsoleCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	out, closeFn, err := openOutput(options)
	if err != nil {
		return err
	}
	defer closeFn()

	color.New(color.FgGreen).Fprintln(out, "Per-Commit Change Statistics")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Commits: %d\n\n", len(report.Commits))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Commit\tTimestamp\tAuthor\tExt\tLines\tFiles\tAdditions\tDeletions\tModifications")

	for _, sha := range sortedCommitIDs(report) {
		detail := report.Commits[sha]
		short := sha
		if len(short) > 8 {
			short = short[:8]
		}
		if len(detail.Stats) == 0 {
			fmt.Fprintf(tw, "%s\t%d\t%s\t-\t0\t0\t0\t0\t0\n", short, detail.Timestamp, detail.Author)
			continue
		}
		for _, ext := range sortedKeys(detail.Stats) {
			c := detail.Stats[ext]
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
				short, detail.Timestamp, detail.Author, ext,
				c.Lines, c.Files, c.Additions, c.Deletions, c.Modifications)
		}
	}

	return tw.Flush()
}

// sortedCommitIDs orders commits by timestamp, then hash, oldest first.
func sortedCommitIDs(report *CommitReport) []string {
	ids := make([]string, 0, len(report.Commits))
	for sha := range report.Commits {
		ids = append(ids, sha)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := report.Commits[ids[i]].Timestamp, report.Commits[ids[j]].Timestamp
		if ti != tj {
			return ti < tj
		}
		return ids[i] < ids[j]
	})
	return ids
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
