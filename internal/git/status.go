package git

import "strings"

// StatusCounts tallies the status lines of a porcelain report.
//
// Every line lands in exactly one of untracked, conflicts, or the
// staged/changed pair; within the pair a single line may count as both
// (e.g. "MM" is staged and changed).
type StatusCounts struct {
	Staged    int
	Conflicts int
	Changed   int
	Untracked int
}

// conflictCodes are the index/worktree code pairs git reports for
// unmerged paths.
var conflictCodes = map[string]bool{
	"AA": true,
	"AU": true,
	"DD": true,
	"DU": true,
	"UA": true,
	"UD": true,
	"UU": true,
}

const (
	// stagedCodes are index-column codes counting as staged.
	stagedCodes = "ACDMR"
	// changedCodes are worktree-column codes counting as changed.
	changedCodes = "CDMR"
)

// CountStatus classifies the status lines of a porcelain report. The
// header line must already be excluded. The first character of each line
// is the index status, the second the worktree status, per the porcelain
// v1 format.
func CountStatus(lines []string) StatusCounts {
	var c StatusCounts

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		if line[0] == '?' {
			c.Untracked++
			continue
		}
		if conflictCodes[line[:2]] {
			c.Conflicts++
			continue
		}
		if strings.IndexByte(stagedCodes, line[0]) >= 0 {
			c.Staged++
		}
		if strings.IndexByte(changedCodes, line[1]) >= 0 {
			c.Changed++
		}
	}

	return c
}
