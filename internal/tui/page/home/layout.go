package home

import "math"

const (
	// panelHeightDivisor sizes the panel as a fraction of the viewport height.
	panelHeightDivisor = 4.3
	minPanelHeight     = 9
	buttonMargin       = 1
)

// Layout holds the geometry the two animated channels move between.
type Layout struct {
	PanelHeight  int
	ButtonMargin int
}

func LayoutFor(viewportHeight int) Layout {
	h := int(math.Round(float64(viewportHeight) / panelHeightDivisor))
	return Layout{
		PanelHeight:  max(h, minPanelHeight),
		ButtonMargin: buttonMargin,
	}
}

// PanelHidden is the panel offset while closed: shifted up by its full height.
func (l Layout) PanelHidden() float64 { return -float64(l.PanelHeight) }

// PanelShown is the panel offset while open.
func (l Layout) PanelShown() float64 { return 0 }

// ButtonOpen is the toggle button offset while the panel is open: just below it.
func (l Layout) ButtonOpen() float64 { return float64(l.PanelHeight + l.ButtonMargin) }

// ButtonClosed is the toggle button offset while the panel is closed.
func (l Layout) ButtonClosed() float64 { return 0 }
