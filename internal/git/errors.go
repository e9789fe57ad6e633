package git

import "errors"

// Error kinds returned by this package. Every failure wraps one of these
// so callers can distinguish "not in a repository" from genuine faults.
var (
	// ErrNotFound indicates no .git entry was found walking up from the
	// starting directory.
	ErrNotFound = errors.New("no git repository found")

	// ErrIO indicates a required metadata file exists but could not be
	// read, such as a worktree pointer or the HEAD marker.
	ErrIO = errors.New("unreadable repository metadata")

	// ErrParse indicates malformed header text where a count was expected.
	ErrParse = errors.New("malformed status header")
)
