package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/raphi011/gitstat/internal/output"
)

// Under go test stdin is /dev/null, which counts as piped input with an
// empty report: outside a repository the tool must stay silent.
func TestRunStatus_SilentOutsideRepo(t *testing.T) {
	workDir = t.TempDir()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	if err := runStatus(ctx); err != nil {
		t.Fatalf("runStatus error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("runStatus wrote %q outside a repository", buf.String())
	}
}

func TestCollectSummary_NotRepo(t *testing.T) {
	workDir = t.TempDir()

	_, err := collectSummary(context.Background())
	if !errors.Is(err, errNotRepo) {
		t.Errorf("error = %v, want errNotRepo", err)
	}
}
