// Package level renders the character's level as a small braille ring with
// the level number in its center.
package level

import (
	"image/color"
	"strconv"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/theme"
)

const (
	// braille dots: 2 per column, 4 per row, so 6 columns by 3 rows.
	dotsWidth  = 12
	dotsHeight = 12

	ringRadius    = 5
	ringThickness = 1
)

type Badge struct {
	Level int
	// Progress fills the ring clockwise; 0 leaves only the track.
	Progress  float64
	Color     color.Color
	Track     color.Color
	TextColor color.Color
}

type Option func(*Badge)

func WithProgress(p float64) Option {
	return func(b *Badge) {
		b.Progress = p
	}
}

func WithColor(c color.Color) Option {
	return func(b *Badge) {
		b.Color = c
	}
}

func New(level int, opts ...Option) Badge {
	b := Badge{
		Level:     level,
		Color:     theme.ColorXP,
		Track:     theme.ColorTrack,
		TextColor: theme.ColorXP,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b Badge) Render() string {
	var (
		canvas = drawille.NewCanvas()
		cx, cy = dotsWidth / 2, dotsHeight / 2
	)

	drawRing(&canvas, cx, cy, ringRadius, ringThickness, 1)
	track := canvasLines(&canvas, dotsWidth, dotsHeight)

	canvas.Clear()
	drawRing(&canvas, cx, cy, ringRadius, ringThickness, b.Progress)
	fill := canvasLines(&canvas, dotsWidth, dotsHeight)

	ring := colorize(track, fill, b.Track, b.Color)

	number := lipgloss.NewStyle().
		Foreground(b.TextColor).
		Bold(true).
		Render(strconv.Itoa(b.Level))

	center := lipgloss.Place(
		dotsWidth/2,
		dotsHeight/4,
		lipgloss.Center,
		lipgloss.Center,
		number,
	)

	return overlay(strings.Join(ring, "\n"), center)
}

const emptyBraille rune = '⠀'

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// colorize paints track dots in trackColor and, where fill has dots, the
// union of both cells in fillColor.
func colorize(track, fill []string, trackColor, fillColor color.Color) []string {
	var (
		trackStyle = lipgloss.NewStyle().Foreground(trackColor)
		fillStyle  = lipgloss.NewStyle().Foreground(fillColor)
		out        = make([]string, len(track))
	)

	for i, line := range track {
		var (
			tr = []rune(line)
			fr []rune
			sb strings.Builder
		)
		if i < len(fill) {
			fr = []rune(fill[i])
		}

		for j, t := range tr {
			f := ' '
			if j < len(fr) {
				f = fr[j]
			}

			switch {
			case isBraille(f) && f != emptyBraille:
				merged := f
				if isBraille(t) {
					merged = emptyBraille + ((t - emptyBraille) | (f - emptyBraille))
				}
				sb.WriteString(fillStyle.Render(string(merged)))
			case isBraille(t) && t != emptyBraille:
				sb.WriteString(trackStyle.Render(string(t)))
			default:
				sb.WriteRune(' ')
			}
		}
		out[i] = sb.String()
	}
	return out
}
