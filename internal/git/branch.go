package git

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// headerPrefix is the "## " lead-in of the porcelain branch header.
const headerPrefix = "## "

// BranchInfo describes the checked-out branch from the porcelain header.
type BranchInfo struct {
	// Branch is the branch name, or the commit hash when HEAD is detached.
	Branch string
	// Upstream is the tracked remote branch, empty when none is set.
	Upstream string
	// LocalOnly reports that no upstream tracking relationship exists.
	LocalOnly bool
	// Detached reports that HEAD points at a commit rather than a branch.
	Detached bool
}

// Tracking holds the divergence from the upstream branch.
type Tracking struct {
	Ahead  int
	Behind int
}

// ParseBranchLine parses the "## ..." header of a porcelain status report
// into a BranchInfo. headFile is read only for a detached HEAD, where the
// header carries no branch name and the commit hash is taken from the
// HEAD marker instead; an unreadable marker wraps ErrIO.
//
// The cases are mutually exclusive and must be tried in this order: the
// tracking bracket is stripped first because an upstream name or bracket
// annotation could otherwise shadow the marker phrases, and "..." is
// matched before the phrase markers because a tracked branch name may
// contain any substring.
func ParseBranchLine(header, headFile string) (BranchInfo, error) {
	content := strings.TrimPrefix(header, headerPrefix)

	// Drop the trailing tracking bracket, e.g. " [ahead 2]". Divergence
	// counts are ParseTracking's concern.
	if strings.HasSuffix(content, "]") {
		if i := strings.LastIndex(content, " ["); i >= 0 {
			content = content[:i]
		}
	}

	info := BranchInfo{LocalOnly: true}

	switch {
	case strings.Contains(content, "..."):
		i := strings.Index(content, "...")
		info.Branch = content[:i]
		info.Upstream = content[i+3:]
		info.LocalOnly = false

	case strings.Contains(content, "no branch"):
		// "## HEAD (no branch)": resolve the commit hash from HEAD.
		hash, err := firstToken(headFile)
		if err != nil {
			return BranchInfo{}, fmt.Errorf("%w: resolving detached HEAD: %v", ErrIO, err)
		}
		info.Branch = hash
		info.Detached = true

	case strings.Contains(content, "Initial commit"), strings.Contains(content, "No commits yet"):
		// "## Initial commit on master" / "## No commits yet on main":
		// the branch name is the last word.
		fields := strings.Fields(content)
		info.Branch = fields[len(fields)-1]

	default:
		info.Branch = content
	}

	return info, nil
}

// ParseTracking extracts ahead/behind counts from the tracking bracket at
// the end of the raw porcelain branch header, e.g.
//
//	## main...origin/main [ahead 2, behind 3]
//
// Headers without a trailing bracket, and brackets carrying other
// annotations such as "[gone]", yield zero counts without error. A
// bracket that names ahead or behind but carries no digits is malformed
// and wraps ErrParse.
func ParseTracking(header string) (Tracking, error) {
	var t Tracking

	if !strings.HasSuffix(header, "]") {
		return t, nil
	}
	i := strings.Index(header, " [")
	if i < 0 {
		return t, nil
	}

	// Bracket content without the surrounding "[" and "]".
	rest := header[i+2 : len(header)-1]

	if j := strings.Index(rest, "ahead"); j >= 0 {
		n, remainder, err := leadingInt(strings.TrimPrefix(rest[j+len("ahead"):], " "))
		if err != nil {
			return Tracking{}, err
		}
		t.Ahead = n
		rest = strings.TrimPrefix(remainder, ",")
	}

	if j := strings.Index(rest, "behind"); j >= 0 {
		n, _, err := leadingInt(strings.TrimPrefix(rest[j+len("behind"):], " "))
		if err != nil {
			return Tracking{}, err
		}
		t.Behind = n
	}

	return t, nil
}

// leadingInt parses the digit run at the start of s and returns the
// remainder. An empty run is an ErrParse: a bracket that got this far
// promised a count.
func leadingInt(s string) (int, string, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, "", fmt.Errorf("%w: expected digits at %q", ErrParse, s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, s[end:], nil
}

// firstToken returns the first whitespace-delimited token of the file at
// path. Shared by the detached-HEAD fallback and the rebase probes.
func firstToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty file %s", path)
	}
	return fields[0], nil
}
