package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/status"
	"github.com/garrettladley/dino/internal/tui/components/dino"
	"github.com/garrettladley/dino/internal/tui/components/footer"
	"github.com/garrettladley/dino/internal/tui/components/indicator"
	"github.com/garrettladley/dino/internal/tui/components/level"
	"github.com/garrettladley/dino/internal/tui/components/progress"
	"github.com/garrettladley/dino/internal/tui/theme"
)

const (
	topicGap    = 4
	minBarWidth = 8
	maxBarWidth = 24
)

var Hints = []footer.Hint{
	{Key: "space", Desc: "status"},
	{Key: "r", Desc: "refresh"},
	{Key: "?", Desc: "help"},
	{Key: "q", Desc: "quit"},
}

// View draws the scene with the panel and toggle button layered on top at
// their current offsets, and the footer on the last row.
func View(c *Controller, t theme.Theme, sprite dino.Sprite, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	body := max(height-1, 0)
	lines := sceneLines(sprite, width, body)

	offset := c.panel.Round()
	for i, line := range PanelLines(c, t, width) {
		if row := i + offset; row >= 0 && row < len(lines) {
			lines[row] = line
		}
	}

	if row := c.ButtonRow(); row >= 0 && row < len(lines) {
		lines[row] = buttonLine(c.PanelOpen(), width)
	}

	ind := indicator.Indicator{
		Fetching:  c.Fetching(),
		Checked:   c.Checked(),
		Failed:    c.LastFetchFailed(),
		NoPatient: c.PatientID() == "",
	}
	lines = append(lines, footer.New(Hints, ind.Render(), width).Render())

	return strings.Join(lines, "\n")
}

func sceneLines(sprite dino.Sprite, width, height int) []string {
	if height <= 0 {
		return nil
	}
	ground := lipgloss.NewStyle().Foreground(theme.ColorGround).Render(strings.Repeat("▀", width))
	scene := lipgloss.Place(width, max(height-1, 0), lipgloss.Center, lipgloss.Bottom, sprite.Render())
	return alignBottom(append(strings.Split(scene, "\n"), ground), height)
}

// PanelLines renders the panel at its full height; the view clips it by
// the current offset.
func PanelLines(c *Controller, t theme.Theme, width int) []string {
	var (
		h        = c.layout.PanelHeight
		barWidth = min(max((width-topicGap)/2-4, minBarWidth), maxBarWidth)
		ratios   = c.Ratios()
	)

	panel := t.Panel().
		Width(width).
		Height(h).
		AlignHorizontal(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(panelContent(ratios, barWidth))

	return alignTop(strings.Split(panel, "\n"), h)
}

func panelContent(r status.Ratios, barWidth int) string {
	badge := level.New(status.Level).Render()

	xpWidth := 2*barWidth + topicGap - lipgloss.Width(badge) - 2
	xp := progress.NewTopic("XP", r.XP,
		progress.WithWidth(max(xpWidth, minBarWidth)),
		progress.WithFill(theme.ColorXP),
	).Render()

	header := lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", xp)

	topics := r.Topics()
	rows := make([]string, 0, len(topics)/2+1)
	for i := 0; i < len(topics); i += 2 {
		left := progress.NewTopic(topics[i].Title, topics[i].Ratio, progress.WithWidth(barWidth)).Render()
		if i+1 == len(topics) {
			rows = append(rows, left)
			break
		}
		right := progress.NewTopic(topics[i+1].Title, topics[i+1].Ratio, progress.WithWidth(barWidth)).Render()
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", topicGap), right))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}

func buttonLine(open bool, width int) string {
	label := "▼ status"
	if open {
		label = "▲ hide"
	}
	button := lipgloss.NewStyle().
		Foreground(theme.ColorPanel).
		Background(theme.ColorXP).
		Bold(true).
		Padding(0, 2).
		Render(label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button)
}

// alignBottom keeps the last n lines, padding above when short.
func alignBottom(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[len(lines)-n:]
	}
	return append(make([]string, n-len(lines)), lines...)
}

// alignTop keeps the first n lines, padding below when short.
func alignTop(lines []string, n int) []string {
	if len(lines) >= n {
		return lines[:n]
	}
	return append(lines, make([]string, n-len(lines))...)
}
