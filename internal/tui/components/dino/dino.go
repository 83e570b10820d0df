// Package dino draws the idle character that stands behind the status panel.
package dino

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

const FrameInterval = 450 * time.Millisecond

var frames = [...]string{
	`
          ▄███████▄
          ██▄██████
          █████████
          █████▄▄▄
 █       █████
 ██▄   ▄███████▄
 ████████████ ▀
  ▀██████████
    ███▀▀▀██
    ██    ██▄`,
	`
          ▄███████▄
          ██▄██████
          █████████
          █████▄▄▄
         █████
 █▄    ▄███████▄
 ▀███████████ ▀
  ▀██████████
    ███▀▀▀██
    ██▄   ██`,
}

// FrameMsg advances the idle loop by one frame.
type FrameMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

func FrameCount() int { return len(frames) }

type Sprite struct {
	Frame int
}

func (s Sprite) Next() Sprite {
	return Sprite{Frame: (s.Frame + 1) % len(frames)}
}

func (s Sprite) Render() string {
	art := strings.TrimPrefix(frames[s.Frame%len(frames)], "\n")
	body := lipgloss.NewStyle().Foreground(theme.ColorDino).Render(art)

	shadow := lipgloss.NewStyle().
		Foreground(theme.ColorShadow).
		Width(lipgloss.Width(art)).
		Align(lipgloss.Center).
		Render(strings.Repeat("▀", lipgloss.Width(art)*2/3))

	return lipgloss.JoinVertical(lipgloss.Center, body, shadow)
}
