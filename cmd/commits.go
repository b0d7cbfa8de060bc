package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/internal/analyze"
	"github.com/repostats/repostats-go/internal/output"
)

// CommitsCmd returns the commits command.
func CommitsCmd() *cli.Command {
	return &cli.Command{
		Name:    "commits",
		Aliases: []string{"c"},
		Usage:   "Report change volume per commit and file extension",
		Flags:   commonFlags(),
		Action:  commitsAction,
	}
}

func commitsAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	commits, err := analyze.Commits(c.Context, ctx.Options)
	ctx.FinishProgress()
	if err != nil {
		return err
	}

	report := &output.CommitReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Commits:     commits,
	}

	return writeCommitReport(c, report)
}
