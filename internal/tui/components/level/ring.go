package level

import (
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen angles: 0°=3 o'clock, 90°=6 o'clock, 270°=12 o'clock.
	ringStart = 270.0
	ringSweep = 360.0
)

// drawRing plots a ring of the given thickness, or the part of it that
// covers fill (0..1) clockwise from 12 o'clock.
func drawRing(canvas *drawille.Canvas, cx, cy, radius, thickness int, fill float64) {
	if fill <= 0 {
		return
	}
	fill = min(fill, 1)
	end := ringStart + fill*ringSweep

	for t := range thickness {
		r := radius - t
		if r <= 0 {
			continue
		}
		midpointCircle(canvas, cx, cy, r, ringStart, end)
	}
}

// midpointCircle walks one octant with integer steps and mirrors it.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func midpointCircle(canvas *drawille.Canvas, cx, cy, r int, start, end float64) {
	x, y := r, 0
	d := 1 - r

	for x >= y {
		for _, p := range [8][2]int{
			{cx + x, cy - y}, {cx + y, cy - x},
			{cx - y, cy - x}, {cx - x, cy - y},
			{cx - x, cy + y}, {cx - y, cy + x},
			{cx + y, cy + x}, {cx + x, cy + y},
		} {
			if inSweep(cx, cy, p[0], p[1], start, end) {
				canvas.Set(p[0], p[1])
			}
		}

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// inSweep reports whether the point lies within [start, end] degrees around
// the center. end may exceed 360 when the sweep wraps past 3 o'clock.
func inSweep(cx, cy, px, py int, start, end float64) bool {
	angle := math.Atan2(float64(py-cy), float64(px-cx)) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	if end > 360 {
		return angle >= start || angle <= end-360
	}
	return angle >= start && angle <= end
}

// canvasLines renders the canvas into exactly height/4 rows of width/2 runes.
func canvasLines(canvas *drawille.Canvas, width, height int) []string {
	var (
		cols  = width / 2
		rows  = canvas.Rows(0, 0, width, height)
		lines = make([]string, height/4)
	)

	for i := range lines {
		var line []rune
		if i < len(rows) {
			line = []rune(rows[i])
		}
		if len(line) > cols {
			line = line[:cols]
		}
		lines[i] = string(line) + strings.Repeat(" ", cols-len(line))
	}
	return lines
}
