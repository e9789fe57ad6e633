// Package status assembles the working tree summary gitstat emits.
package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raphi011/gitstat/internal/git"
)

// NoUpstream fills the upstream field of the status line when the branch
// tracks nothing. Two consecutive dots cannot appear in a ref name, so
// prompt scripts can test for it without ambiguity.
const NoUpstream = ".."

// Summary is the complete state of a working tree, assembled once per
// invocation and immutable afterwards.
type Summary struct {
	Branch   git.BranchInfo
	Tracking git.Tracking
	Counts   git.StatusCounts
	Stashed  int
	Merging  bool
	Rebase   string
}

// Collect parses a porcelain status report and probes the repository
// metadata under paths. lines[0] must be the "## ..." branch header; the
// remaining lines are classified into counts. The first failing step
// aborts the whole collection.
func Collect(lines []string, paths git.RepoPaths) (Summary, error) {
	if len(lines) == 0 {
		return Summary{}, fmt.Errorf("%w: empty status report", git.ErrParse)
	}

	branch, err := git.ParseBranchLine(lines[0], paths.HeadFile())
	if err != nil {
		return Summary{}, err
	}

	tracking, err := git.ParseTracking(lines[0])
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Branch:   branch,
		Tracking: tracking,
		Counts:   git.CountStatus(lines[1:]),
		Stashed:  git.StashCount(paths.StashLogFile()),
		Merging:  git.MergeInProgress(paths.MergeHeadFile()),
		Rebase:   git.RebaseProgress(paths.RebaseDir()),
	}, nil
}

// Line renders the fixed machine-readable line consumed by the shell
// prompt, always exactly 12 space-separated fields:
//
//	branch ahead behind staged conflicts changed untracked stashed
//	local upstream merging rebase
//
// Booleans render as 0/1, a missing upstream as NoUpstream, rebase as
// "0" or "current/total".
func (s Summary) Line() string {
	upstream := s.Branch.Upstream
	if upstream == "" {
		upstream = NoUpstream
	}

	fields := []string{
		s.Branch.Branch,
		strconv.Itoa(s.Tracking.Ahead),
		strconv.Itoa(s.Tracking.Behind),
		strconv.Itoa(s.Counts.Staged),
		strconv.Itoa(s.Counts.Conflicts),
		strconv.Itoa(s.Counts.Changed),
		strconv.Itoa(s.Counts.Untracked),
		strconv.Itoa(s.Stashed),
		boolField(s.Branch.LocalOnly),
		upstream,
		boolField(s.Merging),
		s.Rebase,
	}
	return strings.Join(fields, " ")
}

// Clean reports whether the working tree has no staged, conflicting,
// changed or untracked paths.
func (s Summary) Clean() bool {
	c := s.Counts
	return c.Staged == 0 && c.Conflicts == 0 && c.Changed == 0 && c.Untracked == 0
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
