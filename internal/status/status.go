// Package status turns raw character attributes into the bar-fill ratios
// the home screen draws.
package status

import "github.com/garrettladley/dino/internal/client/character"

const (
	XPScale        = 100
	AttributeScale = 20
)

// Level is the number shown on the badge. It is not derived from the status
// yet; the progression rule is still undecided.
const Level = 0

type Ratios struct {
	XP          float64
	Energia     float64
	Felicidade  float64
	Alimentacao float64
	Forca       float64
}

// RatiosOf divides each attribute by its scale. A nil status yields all
// zeros. Results are not clamped.
func RatiosOf(s *character.Status) Ratios {
	if s == nil {
		return Ratios{}
	}
	return Ratios{
		XP:          s.XP / XPScale,
		Energia:     s.Energia / AttributeScale,
		Felicidade:  s.Felicidade / AttributeScale,
		Alimentacao: s.Alimentacao / AttributeScale,
		Forca:       s.Forca / AttributeScale,
	}
}

type Topic struct {
	Title string
	Ratio float64
}

// Topics lists the four attribute bars in display order. XP is drawn
// separately under the level badge.
func (r Ratios) Topics() []Topic {
	return []Topic{
		{Title: "Energia", Ratio: r.Energia},
		{Title: "Felicidade", Ratio: r.Felicidade},
		{Title: "Alimentação", Ratio: r.Alimentacao},
		{Title: "Força", Ratio: r.Forca},
	}
}
