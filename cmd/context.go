package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/config"
	"github.com/repostats/repostats-go/internal/analyze"
	"github.com/repostats/repostats-go/internal/output"
)

// CommandContext holds common state for command execution. It encapsulates
// the shared setup logic across the analysis commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Options  analyze.Options
	Progress *output.Progress
}

// NewCommandContext builds analysis options from CLI flags and configuration.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")

	opts := analyze.Options{
		RepoPath:       repoPath,
		AuthorPatterns: cfg.Authors.Patterns,
		Extensions:     cfg.Extensions,
		Include:        cfg.Filters.Include,
		Exclude:        cfg.Filters.Exclude,
		Workers:        cfg.Workers,
	}

	ctx := &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Options:  opts,
	}

	if c.Bool("progress") {
		ctx.Progress = output.NewProgress()
		ctx.Options.OnProgress = ctx.Progress.Update
	}

	return ctx, nil
}

// FinishProgress terminates the progress line, if one was active.
func (ctx *CommandContext) FinishProgress() {
	if ctx.Progress != nil {
		ctx.Progress.Finish()
	}
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	}
}
