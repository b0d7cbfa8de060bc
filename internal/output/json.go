package output

import "encoding/json"

// JSONHistoryWriter writes monthly history reports as JSON. The body is
// exactly the month -> extension -> counters mapping, with no envelope, so
// exports stay compatible with the merge tool and with downstream consumers
// of the original exporter.
type JSONHistoryWriter struct{}

// Write outputs the monthly mapping as indented JSON.
func (w *JSONHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	return writeJSON(report.Months, options)
}

// JSONCommitWriter writes per-commit reports as JSON, emitting the
// commit-id -> detail mapping directly.
type JSONCommitWriter struct{}

// Write outputs the commit mapping as indented JSON.
func (w *JSONCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	return writeJSON(report.Commits, options)
}

func writeJSON(v any, options OutputOptions) error {
	out, closeFn, err := openOutput(options)
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
