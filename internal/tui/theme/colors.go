package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#8A8A8A")
)

var (
	ColorPanel = lipgloss.Color("#FBFEF4") // status panel surface
	ColorBar   = lipgloss.Color("#32B708") // attribute bar fill
	ColorXP    = lipgloss.Color("#1A7EF1") // XP bar fill and level badge
	ColorTrack = lipgloss.Color("#DCDCDC") // unfilled portion of every bar
	ColorText  = lipgloss.Color("#5C4B4B") // panel titles and labels
)

var (
	ColorSky    = lipgloss.Color("#DFF3FF") // scene behind the dino
	ColorGround = lipgloss.Color("#B8D98A")
	ColorShadow = lipgloss.Color("#9BB974")
	ColorDino   = lipgloss.Color("#32B708")
)

var (
	ColorSynced  = lipgloss.Color("#32B708")
	ColorFailed  = lipgloss.Color("#E5484D")
	ColorPending = lipgloss.Color("#8A8A8A")
)
