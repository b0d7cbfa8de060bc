package git

import "context"

// MockChangeSource is a test double for HistoryReader. It allows tests to
// provide predefined commit data without needing a real Git repository.
type MockChangeSource struct {
	ChangeSets []CommitChangeSet
	Error      error
}

// NewMockChangeSource creates a new MockChangeSource with the given data.
func NewMockChangeSource(changeSets []CommitChangeSet, err error) *MockChangeSource {
	return &MockChangeSource{
		ChangeSets: changeSets,
		Error:      err,
	}
}

// ReadChanges returns the predefined change sets or error.
func (m *MockChangeSource) ReadChanges(_ context.Context) ([]CommitChangeSet, error) {
	return m.ChangeSets, m.Error
}

// Compile-time interface conformance check.
var _ ChangeSource = (*MockChangeSource)(nil)
