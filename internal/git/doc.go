// Package git parses porcelain status reports and repository metadata.
//
// The package has two halves. The parsing half is pure: it turns the
// "## ..." branch header and the two-character status lines of
// git status --branch --porcelain into values ([ParseBranchLine],
// [ParseTracking], [CountStatus]). The filesystem half locates the
// repository metadata directories ([Discover], resolving linked-worktree
// indirection) and probes small files under them for stash, merge and
// rebase state ([StashCount], [MergeInProgress], [RebaseProgress]).
//
// Running git itself is kept to a single place, [StatusReport], which
// calls the git CLI directly rather than using a Go git library. The CLI
// is what produces the porcelain format in the first place, and calling
// it keeps the tool compatible with user configuration.
//
// # Error contract
//
// Missing optional state is never an error: no stash log means zero
// stashes, no MERGE_HEAD means no merge, no rebase-apply directory means
// no rebase, no tracking bracket means zero divergence. Malformed
// required state is always an error: an unreadable worktree pointer or
// HEAD marker wraps [ErrIO], a tracking bracket naming ahead/behind
// without a count wraps [ErrParse], and a directory outside any
// repository wraps [ErrNotFound]. Callers match with errors.Is.
package git
