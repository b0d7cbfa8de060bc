package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"golang.org/x/sync/errgroup"

	"github.com/repostats/repostats-go/internal/classify"
)

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	repo  *gogit.Repository
	opts  ReadOptions
	allow classify.Allowlist
}

// NewHistoryReader opens the repository and validates the reader options.
// A path that is not a valid repository yields a *RepositoryError.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	repo, err := gogit.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, &RepositoryError{Path: opts.RepoPath, Err: err}
	}

	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid path filter pattern %q", pattern)
		}
	}

	allow := opts.Extensions
	if allow == nil {
		allow = classify.DefaultAllowlist()
	}

	return &HistoryReader{repo: repo, opts: opts, allow: allow}, nil
}

// ReadChanges walks the whole history reachable from HEAD in canonical order
// and returns one CommitChangeSet per commit that passes the author filter.
// Commits with no eligible changes are still returned, with empty Changes.
func (r *HistoryReader) ReadChanges(ctx context.Context) ([]CommitChangeSet, error) {
	commits, err := r.enumerate()
	if err != nil {
		return nil, err
	}

	total := len(commits)
	completed := 0
	progress := func() {
		completed++
		if r.opts.OnProgress != nil {
			r.opts.OnProgress(completed, total)
		}
	}

	// Author filtering happens before any diff work; skipped commits are
	// still reported to the progress observer.
	selected := make([]*object.Commit, 0, len(commits))
	for _, c := range commits {
		if r.opts.Authors != nil && !r.opts.Authors.Match(AuthorInfo{Name: c.Author.Name, Email: c.Author.Email}.String()) {
			progress()
			continue
		}
		selected = append(selected, c)
	}

	changes, err := r.computeChanges(ctx, selected)
	if err != nil {
		return nil, err
	}

	// Fold in canonical order: downstream first-seen bookkeeping depends on
	// the change sets arriving in enumeration order.
	results := make([]CommitChangeSet, 0, len(selected))
	for i, c := range selected {
		results = append(results, CommitChangeSet{
			Commit: CommitInfo{
				SHA:     c.Hash.String(),
				When:    c.Author.When,
				Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
				Message: c.Message,
			},
			Changes: changes[i],
		})
		progress()
	}

	return results, nil
}

// enumerate resolves HEAD and lists reachable commits in canonical order.
// A repository with no commits yields an empty slice, not an error.
func (r *HistoryReader) enumerate() ([]*object.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, &RepositoryError{Path: r.opts.RepoPath, Err: err}
	}

	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, &RepositoryError{Path: r.opts.RepoPath, Err: err}
	}

	commits, err := enumerateCommits(headCommit)
	if err != nil {
		return nil, &RepositoryError{Path: r.opts.RepoPath, Err: err}
	}
	return commits, nil
}

// computeChanges maps commits to their file changes, index-aligned with the
// input. Diff computation is stateless per commit, so it may run in parallel;
// results are always consumed in input order by the caller.
func (r *HistoryReader) computeChanges(ctx context.Context, commits []*object.Commit) ([][]FileChange, error) {
	out := make([][]FileChange, len(commits))

	if r.opts.Workers <= 1 {
		for i, c := range commits {
			changes, err := r.changesForCommit(ctx, c)
			if err != nil {
				return nil, err
			}
			out[i] = changes
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, c := range commits {
		g.Go(func() error {
			changes, err := r.changesForCommit(gctx, c)
			if err != nil {
				return err
			}
			out[i] = changes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
