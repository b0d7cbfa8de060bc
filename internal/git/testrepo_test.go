package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// createTestRepo creates a temporary git repository.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := gogit.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return tmpDir, repo
}

// commitFiles writes the given files into the worktree and commits them with
// the given author and timestamp. Returns the commit hash.
func commitFiles(t *testing.T, repo *gogit.Repository, files map[string]string, message string, author AuthorInfo, when time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	root := w.Filesystem.Root()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: when},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

// removeFiles stages file deletions and commits them.
func removeFiles(t *testing.T, repo *gogit.Repository, names []string, message string, author AuthorInfo, when time.Time) string {
	t.Helper()

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for _, name := range names {
		if _, err := w.Remove(name); err != nil {
			t.Fatalf("Failed to remove file: %v", err)
		}
	}

	hash, err := w.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{Name: author.Name, Email: author.Email, When: when},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash.String()
}

// numberedLines builds content with one numbered line per row, inclusive.
func numberedLines(prefix string, from, to int) string {
	var sb strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&sb, "%s%d\n", prefix, i)
	}
	return sb.String()
}

var (
	alice = AuthorInfo{Name: "Alice", Email: "alice@example.com"}
	bob   = AuthorInfo{Name: "Bob", Email: "bob@example.com"}
)

// buildFixtureRepo creates a four-commit repository:
//
//	c1 (Alice, 2024-03-01): adds a.py with 10 lines
//	c2 (Alice, 2024-03-10): a.py loses line 1, gains lines 11-12
//	c3 (Bob,   2024-03-20): adds b.md (5 lines) and logo.png
//	c4 (Bob,   2024-04-02): deletes b.md
func buildFixtureRepo(t *testing.T) string {
	t.Helper()

	path, repo := createTestRepo(t)

	commitFiles(t, repo, map[string]string{
		"a.py": numberedLines("line", 1, 10),
	}, "c1", alice, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	commitFiles(t, repo, map[string]string{
		"a.py": numberedLines("line", 2, 12),
	}, "c2", alice, time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC))

	commitFiles(t, repo, map[string]string{
		"b.md":     numberedLines("note", 1, 5),
		"logo.png": "\x89PNG\r\n",
	}, "c3", bob, time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC))

	removeFiles(t, repo, []string{"b.md"}, "c4", bob,
		time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC))

	return path
}
