// Package cmd wires the repostats CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/config"
	"github.com/repostats/repostats-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "repostats",
		Usage:   "Commit history statistics for Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			HistoryCmd(),
			CommitsCmd(),
			MergeCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Common flags shared across analysis commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:    "author",
			Aliases: []string{"a"},
			Usage:   "Author regex pattern (can be specified multiple times; none = all authors)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:    "progress",
			Aliases: []string{"p"},
			Usage:   "Show commit progress on stderr",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Parallel diff computations (1 = sequential)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults, applying CLI
// overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if patterns := c.StringSlice("author"); len(patterns) > 0 {
		cfg.Authors.Patterns = patterns
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if workers := c.Int("workers"); workers > 0 {
		cfg.Workers = workers
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
