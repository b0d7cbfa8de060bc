package output

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/repostats/repostats-go/internal/aggregation"
)

// csvHistoryMetrics are the per-extension columns of the monthly CSV export,
// in column order.
var csvHistoryMetrics = []string{"lines", "additions", "deletions", "modifications", "repos"}

// CSVHistoryWriter writes monthly history reports as CSV: one row per month,
// one column group per extension.
type CSVHistoryWriter struct{}

// Write outputs the monthly history report as CSV.
func (w *CSVHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	out, closeFn, err := openOutput(options)
	if err != nil {
		return err
	}
	defer closeFn()

	exts := collectExtensions(report.Months)

	cw := csv.NewWriter(out)

	header := []string{"Month"}
	for _, ext := range exts {
		for _, metric := range csvHistoryMetrics {
			header = append(header, fmt.Sprintf("%s %s", ext, metric))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, month := range sortedKeys(report.Months) {
		row := []string{month}
		for _, ext := range exts {
			c := report.Months[month][ext]
			row = append(row,
				strconv.Itoa(c.Lines),
				strconv.Itoa(c.Additions),
				strconv.Itoa(c.Deletions),
				strconv.Itoa(c.Modifications),
				strconv.Itoa(c.Repos),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVCommitWriter writes per-commit reports as CSV, one row per commit and
// extension.
type CSVCommitWriter struct{}

// Write outputs the per-commit report as CSV, oldest commit first.
func (w *CSVCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	out, closeFn, err := openOutput(options)
	if err != nil {
		return err
	}
	defer closeFn()

	cw := csv.NewWriter(out)

	header := []string{"Commit", "Timestamp", "Author", "Ext", "Lines", "Files", "Additions", "Deletions", "Modifications"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, sha := range sortedCommitIDs(report) {
		detail := report.Commits[sha]
		for _, ext := range sortedKeys(detail.Stats) {
			c := detail.Stats[ext]
			row := []string{
				sha,
				strconv.FormatInt(detail.Timestamp, 10),
				detail.Author,
				ext,
				strconv.Itoa(c.Lines),
				strconv.Itoa(c.Files),
				strconv.Itoa(c.Additions),
				strconv.Itoa(c.Deletions),
				strconv.Itoa(c.Modifications),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// collectExtensions returns the sorted union of extensions across all months.
func collectExtensions(months aggregation.MonthlyStats) []string {
	set := make(map[string]struct{})
	for _, exts := range months {
		for ext := range exts {
			set[ext] = struct{}{}
		}
	}
	return sortedKeys(set)
}
