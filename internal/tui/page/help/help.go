// Package help lists the home screen key bindings.
package help

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/components/footer"
	"github.com/garrettladley/dino/internal/tui/theme"
)

var Bindings = []footer.Hint{
	{Key: "space / enter / t", Desc: "open or close the status panel"},
	{Key: "click", Desc: "the status button toggles the panel too"},
	{Key: "r", Desc: "refresh the character status"},
	{Key: "?", Desc: "show this help"},
	{Key: "esc / ?", Desc: "back to your dino"},
	{Key: "q / ctrl+c", Desc: "quit"},
}

func View(t theme.Theme, width, height int) string {
	var (
		keyStyle  = t.TextAccent().Width(keyColumnWidth()).PaddingRight(2)
		descStyle = t.Base()
		rows      = make([]string, 0, len(Bindings)+2)
	)

	rows = append(rows, t.TextAccent().Render("Keys"), "")
	for _, b := range Bindings {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(b.Key), descStyle.Render(b.Desc)))
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func keyColumnWidth() int {
	w := 0
	for _, b := range Bindings {
		w = max(w, lipgloss.Width(b.Key))
	}
	return w + 2
}
