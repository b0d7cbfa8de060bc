package git

import "fmt"

// RepositoryError reports a failure to open or enumerate a repository.
type RepositoryError struct {
	Path string
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s: %v", e.Path, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// DiffError reports a failure to compute the changes of a single commit.
type DiffError struct {
	Commit string
	Err    error
}

func (e *DiffError) Error() string {
	return fmt.Sprintf("diff commit %s: %v", e.Commit, e.Err)
}

func (e *DiffError) Unwrap() error { return e.Err }
