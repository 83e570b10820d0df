package indicator

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

const statusDot = "●"

// Indicator reflects the outcome of the most recent status fetch.
type Indicator struct {
	Fetching bool
	Checked  bool
	Failed   bool
	// NoPatient is set when no patient id is configured and nothing is fetched.
	NoPatient bool
}

func (i Indicator) Render() string {
	switch {
	case i.NoPatient:
		return lipgloss.NewStyle().
			Foreground(theme.ColorFailed).
			Render(statusDot + " no patient")
	case i.Fetching:
		return lipgloss.NewStyle().
			Foreground(theme.ColorPending).
			Render(statusDot + " syncing...")
	case !i.Checked:
		return lipgloss.NewStyle().
			Foreground(theme.ColorPending).
			Render(statusDot + " waiting")
	case i.Failed:
		return lipgloss.NewStyle().
			Foreground(theme.ColorFailed).
			Render(statusDot + " offline")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.ColorSynced).
			Render(statusDot + " synced")
	}
}
