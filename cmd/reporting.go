package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/internal/output"
)

func writeHistoryReport(c *cli.Context, report *output.HistoryReport) error {
	opts := OutputOptions(c)
	writer := output.NewHistoryReportWriter(opts.Format)
	return writer.Write(report, opts)
}

func writeCommitReport(c *cli.Context, report *output.CommitReport) error {
	opts := OutputOptions(c)
	writer := output.NewCommitReportWriter(opts.Format)
	return writer.Write(report, opts)
}
