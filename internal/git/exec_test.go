package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report string
		want   []string
	}{
		{
			name:   "empty report",
			report: "",
			want:   nil,
		},
		{
			name:   "newline only",
			report: "\n",
			want:   nil,
		},
		{
			name:   "header only",
			report: "## main...origin/main\n",
			want:   []string{"## main...origin/main"},
		},
		{
			name:   "header and status lines",
			report: "## main\n M a.go\n?? b.go\n",
			want:   []string{"## main", " M a.go", "?? b.go"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SplitLines(tt.report); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %#v, want %#v", tt.report, got, tt.want)
			}
		})
	}
}

// setupTestRepo creates a git repo with main branch, git config, and an
// initial commit. Returns the repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(t.TempDir(), "test-repo")
	ctx := context.Background()

	mustGit(t, ctx, "", "init", "-b", "main", repoPath)
	mustGit(t, ctx, repoPath, "config", "user.email", "test@example.com")
	mustGit(t, ctx, repoPath, "config", "user.name", "Test User")

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	mustGit(t, ctx, repoPath, "add", "README.md")
	mustGit(t, ctx, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

func mustGit(t *testing.T, ctx context.Context, dir string, args ...string) {
	t.Helper()
	if _, err := outputGit(ctx, dir, args...); err != nil {
		t.Fatalf("git %s failed: %v", strings.Join(args, " "), err)
	}
}

func TestStatusReport(t *testing.T) {
	t.Parallel()
	if err := CheckGit(); err != nil {
		t.Skip("git not installed")
	}

	repoPath := setupTestRepo(t)
	ctx := context.Background()

	// Dirty the tree so the report has status lines
	if err := os.WriteFile(filepath.Join(repoPath, "new.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	lines, err := StatusReport(ctx, repoPath)
	if err != nil {
		t.Fatalf("StatusReport error: %v", err)
	}
	if len(lines) < 2 {
		t.Fatalf("got %d lines, want header plus at least one status line", len(lines))
	}
	if !strings.HasPrefix(lines[0], "## ") {
		t.Errorf("header = %q, want \"## \" prefix", lines[0])
	}
	if !strings.Contains(lines[0], "main") {
		t.Errorf("header = %q, want branch name", lines[0])
	}

	counts := CountStatus(lines[1:])
	if counts.Untracked != 1 {
		t.Errorf("Untracked = %d, want 1", counts.Untracked)
	}
}

func TestStatusReport_NotARepo(t *testing.T) {
	t.Parallel()
	if err := CheckGit(); err != nil {
		t.Skip("git not installed")
	}

	_, err := StatusReport(context.Background(), t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
