package git

import "testing"

func TestCountStatus_ConflictPairs(t *testing.T) {
	t.Parallel()

	pairs := []string{"AA", "AU", "DD", "DU", "UA", "UD", "UU"}
	for _, pair := range pairs {
		pair := pair
		t.Run(pair, func(t *testing.T) {
			t.Parallel()
			got := CountStatus([]string{pair + " file.txt"})
			want := StatusCounts{Conflicts: 1}
			if got != want {
				t.Errorf("CountStatus(%q) = %+v, want %+v", pair, got, want)
			}
		})
	}
}

func TestCountStatus_Staged(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"A ", "C ", "D ", "M ", "R "} {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			got := CountStatus([]string{code + "file.txt"})
			want := StatusCounts{Staged: 1}
			if got != want {
				t.Errorf("CountStatus(%q) = %+v, want %+v", code, got, want)
			}
		})
	}
}

func TestCountStatus_Changed(t *testing.T) {
	t.Parallel()

	for _, code := range []string{" C", " D", " M", " R"} {
		code := code
		t.Run(code, func(t *testing.T) {
			t.Parallel()
			got := CountStatus([]string{code + " file.txt"})
			want := StatusCounts{Changed: 1}
			if got != want {
				t.Errorf("CountStatus(%q) = %+v, want %+v", code, got, want)
			}
		})
	}
}

func TestCountStatus_StagedAndChanged(t *testing.T) {
	t.Parallel()

	// Staged file with further unstaged edits counts in both buckets.
	got := CountStatus([]string{"MM file.txt"})
	want := StatusCounts{Staged: 1, Changed: 1}
	if got != want {
		t.Errorf("CountStatus(MM) = %+v, want %+v", got, want)
	}
}

func TestCountStatus_Untracked(t *testing.T) {
	t.Parallel()

	got := CountStatus([]string{"?? new.txt", "?? other.txt"})
	want := StatusCounts{Untracked: 2}
	if got != want {
		t.Errorf("CountStatus = %+v, want %+v", got, want)
	}
}

func TestCountStatus_Report(t *testing.T) {
	t.Parallel()

	lines := []string{
		"M  staged.go",
		"MM both.go",
		" M changed.go",
		"UU conflicted.go",
		"?? untracked.go",
		"R  renamed.go -> new-name.go",
		"",
	}
	got := CountStatus(lines)
	want := StatusCounts{Staged: 3, Conflicts: 1, Changed: 2, Untracked: 1}
	if got != want {
		t.Errorf("CountStatus = %+v, want %+v", got, want)
	}
}

func TestCountStatus_Empty(t *testing.T) {
	t.Parallel()

	if got := CountStatus(nil); got != (StatusCounts{}) {
		t.Errorf("CountStatus(nil) = %+v, want zero counts", got)
	}
}
