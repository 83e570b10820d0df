package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

// Hint is a key binding shown in the footer.
type Hint struct {
	Key  string
	Desc string
}

var (
	keyStyle  = lipgloss.NewStyle().Foreground(theme.ColorText).Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
)

type Footer struct {
	hints        []Hint
	rightContent string
	width        int
	padding      int
}

func New(hints []Hint, rightContent string, width int) Footer {
	return Footer{
		hints:        hints,
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	leftContent := f.hintsContent()
	if extra := f.leftContent(); extra != "" {
		leftContent = extra + "  " + leftContent
	}

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(f.rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + f.rightContent)
}

func (f Footer) hintsContent() string {
	parts := make([]string, 0, len(f.hints))
	for _, h := range f.hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, descStyle.Render(" • "))
}
