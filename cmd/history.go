package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/internal/analyze"
	"github.com/repostats/repostats-go/internal/output"
)

// HistoryCmd returns the history command.
func HistoryCmd() *cli.Command {
	return &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "Aggregate change volume per month and file extension",
		Flags:   commonFlags(),
		Action:  historyAction,
	}
}

func historyAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	months, err := analyze.Repository(c.Context, ctx.Options)
	ctx.FinishProgress()
	if err != nil {
		return err
	}

	report := &output.HistoryReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Months:      months,
	}

	return writeHistoryReport(c, report)
}
