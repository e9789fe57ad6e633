package git

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStashCount(t *testing.T) {
	t.Parallel()

	t.Run("counts non-blank lines", func(t *testing.T) {
		t.Parallel()
		log := filepath.Join(t.TempDir(), "stash")
		content := "0000 1111 stash@{0}: WIP on main\n" +
			"1111 2222 stash@{1}: WIP on main\n" +
			"2222 3333 stash@{2}: WIP on main\n" +
			"\n"
		if err := os.WriteFile(log, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write stash log: %v", err)
		}
		if got := StashCount(log); got != 3 {
			t.Errorf("StashCount = %d, want 3", got)
		}
	})

	t.Run("missing log means zero", func(t *testing.T) {
		t.Parallel()
		if got := StashCount(filepath.Join(t.TempDir(), "stash")); got != 0 {
			t.Errorf("StashCount = %d, want 0", got)
		}
	})
}

func TestMergeInProgress(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	marker := filepath.Join(tmp, "MERGE_HEAD")

	if MergeInProgress(marker) {
		t.Error("MergeInProgress = true before marker exists")
	}

	if err := os.WriteFile(marker, []byte("a1b2c3d\n"), 0644); err != nil {
		t.Fatalf("failed to write marker: %v", err)
	}
	if !MergeInProgress(marker) {
		t.Error("MergeInProgress = false with marker present")
	}
}

func TestRebaseProgress(t *testing.T) {
	t.Parallel()

	t.Run("in progress", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "next"), []byte("2\n"), 0644); err != nil {
			t.Fatalf("failed to write next: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "last"), []byte("5\n"), 0644); err != nil {
			t.Fatalf("failed to write last: %v", err)
		}
		if got := RebaseProgress(dir); got != "2/5" {
			t.Errorf("RebaseProgress = %q, want %q", got, "2/5")
		}
	})

	t.Run("absent directory", func(t *testing.T) {
		t.Parallel()
		if got := RebaseProgress(filepath.Join(t.TempDir(), "rebase-apply")); got != "0" {
			t.Errorf("RebaseProgress = %q, want %q", got, "0")
		}
	})

	t.Run("only next present", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "next"), []byte("2\n"), 0644); err != nil {
			t.Fatalf("failed to write next: %v", err)
		}
		if got := RebaseProgress(dir); got != "0" {
			t.Errorf("RebaseProgress = %q, want %q", got, "0")
		}
	})
}
