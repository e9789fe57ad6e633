package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const gitDirName = ".git"

// RepoPaths holds the resolved metadata directories of a repository.
//
// GitDir is the directory holding the current checkout's metadata (HEAD,
// MERGE_HEAD, rebase-apply). CommonDir is the repository's top-level .git
// directory. The two differ only inside a linked worktree, where the
// checkout's .git entry is a file pointing into the main repository.
// CommonDir is always an ancestor-or-self of GitDir.
type RepoPaths struct {
	GitDir    string
	CommonDir string
}

// HeadFile returns the path of the HEAD marker file.
func (p RepoPaths) HeadFile() string {
	return filepath.Join(p.GitDir, "HEAD")
}

// MergeHeadFile returns the path of the MERGE_HEAD marker file.
func (p RepoPaths) MergeHeadFile() string {
	return filepath.Join(p.GitDir, "MERGE_HEAD")
}

// RebaseDir returns the directory rebase progress files are written to.
func (p RepoPaths) RebaseDir() string {
	return filepath.Join(p.GitDir, "rebase-apply")
}

// StashLogFile returns the path of the stash reflog. Stashes are shared
// between linked worktrees, so this lives under CommonDir.
func (p RepoPaths) StashLogFile() string {
	return filepath.Join(p.CommonDir, "logs", "refs", "stash")
}

// Discover locates the repository metadata for startDir by checking each
// directory from startDir upward for a .git entry.
//
// A .git directory is used as-is. A .git file marks a linked worktree:
// its first line has the form "gitdir: <path>" and names the checkout's
// metadata directory inside the main repository.
//
// Returns ErrNotFound when the walk reaches the filesystem root without
// finding a .git entry, and ErrIO when a worktree pointer file exists
// but cannot be read.
func Discover(startDir string) (RepoPaths, error) {
	dir := filepath.Clean(startDir)
	for {
		entry := filepath.Join(dir, gitDirName)
		if info, err := os.Stat(entry); err == nil {
			if info.IsDir() {
				return RepoPaths{GitDir: entry, CommonDir: entry}, nil
			}
			return resolveWorktree(entry)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return RepoPaths{}, fmt.Errorf("%w (searched upward from %s)", ErrNotFound, startDir)
		}
		dir = parent
	}
}

// resolveWorktree follows a .git pointer file to the checkout's metadata
// directory and derives the main repository's .git directory by walking
// the pointer target's ancestors.
func resolveWorktree(pointerFile string) (RepoPaths, error) {
	data, err := os.ReadFile(pointerFile)
	if err != nil {
		return RepoPaths{}, fmt.Errorf("%w: %v", ErrIO, err)
	}

	// First line: "gitdir: /path/to/repo/.git/worktrees/name"
	fields := strings.Fields(firstLine(string(data)))
	if len(fields) < 2 {
		return RepoPaths{}, fmt.Errorf("%w: malformed worktree pointer %s", ErrIO, pointerFile)
	}
	gitDir := fields[1]

	common := gitDir
	for filepath.Base(common) != gitDirName {
		parent := filepath.Dir(common)
		if parent == common {
			return RepoPaths{}, fmt.Errorf("%w: no %s ancestor of %s", ErrNotFound, gitDirName, gitDir)
		}
		common = parent
	}

	return RepoPaths{GitDir: gitDir, CommonDir: common}, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
