package git

import (
	"os"
	"path/filepath"
	"strings"
)

// StashCount returns the number of stash entries recorded in the stash
// reflog at path, one per non-blank line. A missing log means no stashes
// have ever been made, never an error.
func StashCount(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	count := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// MergeInProgress reports whether a merge has been started but not yet
// committed, i.e. the MERGE_HEAD marker exists. Stat failures count as
// no merge.
func MergeInProgress(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// RebaseProgress returns "<current>/<total>" while a rebase is in
// progress, read from the first tokens of the next and last files under
// rebaseDir, and "0" otherwise. Both files must be readable for progress
// to be reported; anything less means no rebase.
func RebaseProgress(rebaseDir string) string {
	next, err := firstToken(filepath.Join(rebaseDir, "next"))
	if err != nil {
		return "0"
	}
	last, err := firstToken(filepath.Join(rebaseDir, "last"))
	if err != nil {
		return "0"
	}
	return next + "/" + last
}
