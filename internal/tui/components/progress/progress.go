// Package progress renders horizontal ratio bars for the status panel.
package progress

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

const (
	cell         = "█"
	DefaultWidth = 20
)

type Bar struct {
	Ratio float64
	Width int
	Fill  color.Color
	Track color.Color
}

type Option func(*Bar)

func WithWidth(w int) Option {
	return func(b *Bar) {
		b.Width = w
	}
}

func WithFill(c color.Color) Option {
	return func(b *Bar) {
		b.Fill = c
	}
}

func New(ratio float64, opts ...Option) Bar {
	b := Bar{
		Ratio: ratio,
		Width: DefaultWidth,
		Fill:  theme.ColorBar,
		Track: theme.ColorTrack,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Filled is the number of filled cells. Ratios outside [0, 1] stay as they
// are on the bar; only the drawn width is clamped to the track.
func (b Bar) Filled() int {
	if b.Width <= 0 || math.IsNaN(b.Ratio) {
		return 0
	}
	n := int(math.Round(b.Ratio * float64(b.Width)))
	return min(max(n, 0), b.Width)
}

func (b Bar) Render() string {
	filled := b.Filled()
	return lipgloss.NewStyle().Foreground(b.Fill).Render(strings.Repeat(cell, filled)) +
		lipgloss.NewStyle().Foreground(b.Track).Render(strings.Repeat(cell, max(b.Width, 0)-filled))
}

// Topic is a titled bar: the title on one line and the bar below it.
type Topic struct {
	Title string
	Bar   Bar
}

func NewTopic(title string, ratio float64, opts ...Option) Topic {
	return Topic{Title: title, Bar: New(ratio, opts...)}
}

func (t Topic) Render() string {
	title := lipgloss.NewStyle().
		Foreground(theme.ColorText).
		Bold(true).
		Width(max(t.Bar.Width, 0)).
		Render(t.Title)

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Bar.Render())
}
