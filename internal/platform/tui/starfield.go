package tui

import (
	"math/rand"

	"github.com/vovakirdan/invaders-duel/internal/core"
)

// skyStar is a background star in normalized [0, 1) coordinates so the
// field survives terminal resizes unchanged.
type skyStar struct {
	x, y float64
}

// starLayer is one parallax plane. Nearer layers drift faster and draw brighter.
type starLayer struct {
	speed float64 // Fraction of the height per frame
	glyph rune
	color core.Color
	stars []skyStar
}

// Starfield is the drifting background behind the arena. It is purely
// decorative and never touches the simulation.
type Starfield struct {
	layers []starLayer
}

// NewStarfield creates a starfield with a fixed layout for the seed.
func NewStarfield(seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))

	layers := []starLayer{
		{speed: 0.0008, glyph: '.', color: core.ColorDim},
		{speed: 0.0020, glyph: '.', color: core.ColorGray},
		{speed: 0.0045, glyph: '+', color: core.ColorWhite},
	}
	counts := []int{48, 24, 8}
	for i := range layers {
		layers[i].stars = make([]skyStar, counts[i])
		for j := range layers[i].stars {
			layers[i].stars[j] = skyStar{x: rng.Float64(), y: rng.Float64()}
		}
	}
	return &Starfield{layers: layers}
}

// Advance drifts every layer down by one frame, wrapping at the bottom.
func (s *Starfield) Advance() {
	for i := range s.layers {
		l := &s.layers[i]
		for j := range l.stars {
			l.stars[j].y += l.speed
			if l.stars[j].y >= 1 {
				l.stars[j].y -= 1
			}
		}
	}
}

// Draw paints the stars into empty cells of the area.
func (s *Starfield) Draw(dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	for _, l := range s.layers {
		for _, st := range l.stars {
			x := area.X + int(st.x*float64(area.W))
			y := area.Y + int(st.y*float64(area.H))
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, l.glyph, l.color)
			}
		}
	}
}
