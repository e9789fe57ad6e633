package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/gitstat/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose
// logging, returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// StatusReport runs git status --branch --porcelain in dir and returns
// the report lines. A directory outside any repository wraps ErrNotFound
// so callers can stay silent instead of failing.
func StatusReport(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "status", "--branch", "--porcelain")
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not a git repository") {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("git status: %w", err)
	}
	return SplitLines(string(out)), nil
}

// SplitLines splits a porcelain report into lines, dropping the empty
// line after the final newline. An empty report yields nil.
func SplitLines(report string) []string {
	report = strings.TrimRight(report, "\n")
	if report == "" {
		return nil
	}
	return strings.Split(report, "\n")
}
