package git

import "context"

// ChangeSource defines the interface for reading Git repository history.
// This abstraction allows for easier testing and potential alternative
// implementations.
type ChangeSource interface {
	// ReadChanges reads the commit history and returns a slice of
	// CommitChangeSet in canonical order.
	ReadChanges(ctx context.Context) ([]CommitChangeSet, error)
}

// Compile-time interface conformance check.
var _ ChangeSource = (*HistoryReader)(nil)
