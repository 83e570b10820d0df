package splash

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 ▄▄▄▄▄▄     ▄▄▄▄▄▄   ▄▄▄    ▄▄     ▄▄▄▄
 ██▀▀▀▀█▄   ▀▀██▀▀   ███    ██    ██▀▀██
 ██    ██     ██     ██▀█   ██   ██    ██
 ██    ██     ██     ██ ██  ██   ██    ██
 ██    ██     ██     ██  █▄ ██   ██    ██
 ██▄▄▄▄█▀   ▄▄██▄▄   ██   ████    ██▄▄██
 ▀▀▀▀▀▀     ▀▀▀▀▀▀   ▀▀    ▀▀▀     ▀▀▀▀`

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(Duration, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

func LogoView(t theme.Theme) string {
	return lipgloss.NewStyle().Foreground(theme.ColorDino).Bold(true).Render(Logo)
}

func View(t theme.Theme, width, height int) string {
	tagline := t.Muted().Render("take care of your dino")
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, LogoView(t), "", tagline),
	)
}
