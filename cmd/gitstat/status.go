package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gitstat/internal/git"
	"github.com/raphi011/gitstat/internal/log"
	"github.com/raphi011/gitstat/internal/output"
	"github.com/raphi011/gitstat/internal/status"
)

// errNotRepo marks the working directory as being outside any git
// repository. A prompt helper must stay silent in that case, not fail.
var errNotRepo = errors.New("not a git repository")

// runStatus emits the machine-readable status line.
func runStatus(ctx context.Context) error {
	s, err := collectSummary(ctx)
	if errors.Is(err, errNotRepo) {
		return nil
	}
	if err != nil {
		return err
	}

	output.FromContext(ctx).Println(s.Line())
	return nil
}

// collectSummary gathers the porcelain report and the repository
// metadata and builds the summary for the working directory.
func collectSummary(ctx context.Context) (status.Summary, error) {
	l := log.FromContext(ctx)

	lines, err := readReport(ctx)
	if err != nil {
		return status.Summary{}, err
	}
	if len(lines) == 0 {
		// A pipe can legitimately deliver nothing, e.g. when the prompt
		// hook itself ran git outside a repository.
		return status.Summary{}, errNotRepo
	}

	paths, err := git.Discover(workDir)
	if err != nil {
		if errors.Is(err, git.ErrNotFound) {
			return status.Summary{}, errNotRepo
		}
		return status.Summary{}, err
	}
	l.Debug("resolved repository", "gitdir", paths.GitDir, "commondir", paths.CommonDir)

	return status.Collect(lines, paths)
}

// readReport returns the porcelain report lines: from stdin when piped,
// otherwise by running git in the working directory.
func readReport(ctx context.Context) ([]string, error) {
	if stdinPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return git.SplitLines(string(data)), nil
	}

	if err := git.CheckGit(); err != nil {
		return nil, err
	}

	lines, err := git.StatusReport(ctx, workDir)
	if errors.Is(err, git.ErrNotFound) {
		return nil, errNotRepo
	}
	return lines, err
}

// stdinPiped reports whether stdin carries piped input rather than a TTY.
func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
