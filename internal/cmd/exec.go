// Package cmd provides helpers for executing external commands with
// proper error handling and command logging.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/gitstat/internal/log"
)

// RunContext executes a command with context cancellation. The command
// line and its duration are logged via the context logger when verbose.
// On failure the command's trimmed stderr becomes the error message.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err != nil {
		return stderrError(err, &stderr)
	}
	return nil
}

// OutputContext executes a command with context cancellation and returns
// its stdout. Logging and error handling match RunContext.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	done(time.Since(start))
	if err != nil {
		return nil, stderrError(err, &stderr)
	}
	return out, nil
}

// stderrError surfaces the command's stderr as the error when present,
// since exec errors like "exit status 128" carry no useful detail.
func stderrError(err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
