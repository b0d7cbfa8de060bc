package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/repostats/repostats-go/internal/aggregation"
)

// MergeCmd returns the merge command, which combines monthly history JSON
// exports from separate repositories into one history.
func MergeCmd() *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Usage:     "Merge monthly history JSON files into a combined history",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path",
				Value:   "merged_loc_history.json",
			},
			&cli.BoolFlag{
				Name:  "stamp-repos",
				Usage: "Count each input file as one repository before merging",
			},
		},
		Action: mergeAction,
	}
}

func mergeAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("merge requires at least one history file")
	}

	histories := make([]aggregation.MonthlyStats, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read history %s: %w", path, err)
		}
		var history aggregation.MonthlyStats
		if err := json.Unmarshal(data, &history); err != nil {
			return fmt.Errorf("parse history %s: %w", path, err)
		}
		if c.Bool("stamp-repos") {
			history = aggregation.StampRepos(history)
		}
		histories = append(histories, history)
	}

	merged := aggregation.MergeMonthly(histories...)

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.String("output"), append(data, '\n'), 0644)
}
