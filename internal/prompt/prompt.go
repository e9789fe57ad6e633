// Package prompt renders a human-readable segment from a status summary,
// for shells that want a decorated prompt instead of parsing the machine
// line themselves.
package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raphi011/gitstat/internal/config"
	"github.com/raphi011/gitstat/internal/status"
)

// Styles for the segment parts.
var (
	branchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	trackingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	conflictStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	untrackedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stashStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	cleanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	stateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Render produces a one-line segment like "(main↑2|●1✚1…3)". With color
// disabled the same text is emitted without ANSI sequences, so the
// segment stays usable in dumb terminals and tests.
func Render(s status.Summary, cfg config.Config, color bool) string {
	p := cfg.Prompt
	r := renderer{color: color}

	var b strings.Builder
	b.WriteString("(")

	name := s.Branch.Branch
	if s.Branch.Detached {
		name = cfg.HashPrefix + shortHash(name)
	}
	b.WriteString(r.paint(branchStyle, name))

	if s.Tracking.Ahead > 0 {
		b.WriteString(r.paint(trackingStyle, p.AheadSymbol+strconv.Itoa(s.Tracking.Ahead)))
	}
	if s.Tracking.Behind > 0 {
		b.WriteString(r.paint(trackingStyle, p.BehindSymbol+strconv.Itoa(s.Tracking.Behind)))
	}

	if s.Merging {
		b.WriteString(r.paint(stateStyle, "|merge"))
	}
	if s.Rebase != "0" {
		b.WriteString(r.paint(stateStyle, "|rebase "+s.Rebase))
	}

	b.WriteString("|")
	if s.Clean() && s.Stashed == 0 {
		b.WriteString(r.paint(cleanStyle, p.CleanSymbol))
	} else {
		if n := s.Counts.Staged; n > 0 {
			b.WriteString(r.paint(stagedStyle, p.StagedSymbol+strconv.Itoa(n)))
		}
		if n := s.Counts.Conflicts; n > 0 {
			b.WriteString(r.paint(conflictStyle, p.ConflictSymbol+strconv.Itoa(n)))
		}
		if n := s.Counts.Changed; n > 0 {
			b.WriteString(r.paint(changedStyle, p.ChangedSymbol+strconv.Itoa(n)))
		}
		if n := s.Counts.Untracked; n > 0 {
			b.WriteString(r.paint(untrackedStyle, p.UntrackedSymbol+strconv.Itoa(n)))
		}
		if n := s.Stashed; n > 0 {
			b.WriteString(r.paint(stashStyle, p.StashSymbol+strconv.Itoa(n)))
		}
	}

	b.WriteString(")")
	return b.String()
}

type renderer struct {
	color bool
}

func (r renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// shortHash truncates a commit hash to the customary 7 characters.
func shortHash(h string) string {
	if len(h) > 7 {
		return h[:7]
	}
	return h
}
