// Package output renders analysis results in the supported formats.
package output

import (
	"io"
	"os"
	"time"

	"github.com/repostats/repostats-go/internal/aggregation"
)

// Compile-time interface conformance checks.
var (
	_ HistoryReportWriter = (*ConsoleHistoryWriter)(nil)
	_ HistoryReportWriter = (*JSONHistoryWriter)(nil)
	_ HistoryReportWriter = (*CSVHistoryWriter)(nil)

	_ CommitReportWriter = (*ConsoleCommitWriter)(nil)
	_ CommitReportWriter = (*JSONCommitWriter)(nil)
	_ CommitReportWriter = (*CSVCommitWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // empty means stdout
}

// HistoryReport holds the results of whole-history monthly analysis.
type HistoryReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Months      aggregation.MonthlyStats
}

// CommitReport holds the results of per-commit analysis.
type CommitReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Commits     aggregation.CommitStats
}

// HistoryReportWriter writes monthly history reports.
type HistoryReportWriter interface {
	Write(report *HistoryReport, options OutputOptions) error
}

// CommitReportWriter writes per-commit reports.
type CommitReportWriter interface {
	Write(report *CommitReport, options OutputOptions) error
}

// NewHistoryReportWriter returns the writer for the given format.
func NewHistoryReportWriter(format OutputFormat) HistoryReportWriter {
	switch format {
	case FormatJSON:
		return &JSONHistoryWriter{}
	case FormatCSV:
		return &CSVHistoryWriter{}
	default:
		return &ConsoleHistoryWriter{}
	}
}

// NewCommitReportWriter returns the writer for the given format.
func NewCommitReportWriter(format OutputFormat) CommitReportWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	case FormatCSV:
		return &CSVCommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}

// openOutput resolves the destination writer. The returned closer is a no-op
// for stdout.
func openOutput(options OutputOptions) (io.Writer, func() error, error) {
	if options.OutputPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(options.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
