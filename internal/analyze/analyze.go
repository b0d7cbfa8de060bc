// Package analyze exposes the two repository analysis entry points: whole
// history aggregated by month, and per-commit statistics.
package analyze

import (
	"context"

	"github.com/repostats/repostats-go/internal/aggregation"
	"github.com/repostats/repostats-go/internal/authors"
	"github.com/repostats/repostats-go/internal/classify"
	"github.com/repostats/repostats-go/internal/git"
)

// Options configures one analysis call. All state built during a call is
// owned by that call; nothing is shared between invocations.
type Options struct {
	RepoPath       string
	AuthorPatterns []string // empty means every commit is included
	Extensions     []string // empty means the default text allowlist
	Include        []string // optional path globs
	Exclude        []string
	Workers        int // parallel diff computations; <=1 is sequential

	// OnProgress, when set, is invoked once per enumerated commit.
	OnProgress func(completed, total int)
}

// Repository walks the whole commit history and returns per-month,
// per-extension change statistics.
//
// It fails with *authors.PatternError before any traversal when a pattern
// does not compile, *git.RepositoryError when the path is not a repository,
// and *git.DiffError on any diff failure. All failures discard the whole
// result.
func Repository(ctx context.Context, opts Options) (aggregation.MonthlyStats, error) {
	sets, err := readHistory(ctx, opts)
	if err != nil {
		return nil, err
	}

	agg := aggregation.NewHistoryAggregator()
	agg.AddAll(sets)
	return agg.Result(), nil
}

// Commits walks the whole commit history and returns per-commit statistics.
// Every commit that passes the author filter appears in the result, with an
// empty stats map when it has no eligible changes. Failure modes match
// Repository.
func Commits(ctx context.Context, opts Options) (aggregation.CommitStats, error) {
	sets, err := readHistory(ctx, opts)
	if err != nil {
		return nil, err
	}

	agg := aggregation.NewCommitAggregator()
	agg.AddAll(sets)
	return agg.Result(), nil
}

// readHistory compiles the author filter (fail fast, before the repository is
// touched), opens the repository, and reads the ordered change sets.
func readHistory(ctx context.Context, opts Options) ([]git.CommitChangeSet, error) {
	matcher, err := authors.NewMatcher(opts.AuthorPatterns)
	if err != nil {
		return nil, err
	}

	var allow classify.Allowlist
	if len(opts.Extensions) > 0 {
		allow = classify.NewAllowlist(opts.Extensions)
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		RepoPath:   opts.RepoPath,
		Authors:    matcher,
		Extensions: allow,
		Include:    opts.Include,
		Exclude:    opts.Exclude,
		Workers:    opts.Workers,
		OnProgress: opts.OnProgress,
	})
	if err != nil {
		return nil, err
	}

	return reader.ReadChanges(ctx)
}
