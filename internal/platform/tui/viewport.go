package tui

import (
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// Viewport projects logical arena coordinates onto a region of the screen.
type Viewport struct {
	ArenaW, ArenaH int
	Area           core.Rect // Screen cells the arena is drawn into
}

// NewViewport creates a viewport for an arena of the given logical size.
func NewViewport(arenaW, arenaH int, area core.Rect) Viewport {
	return Viewport{ArenaW: max(arenaW, 1), ArenaH: max(arenaH, 1), Area: area}
}

// Point returns the screen cell containing the arena point (x, y).
func (v Viewport) Point(x, y int) (int, int) {
	return v.Area.X + floorDiv(x*v.Area.W, v.ArenaW),
		v.Area.Y + floorDiv(y*v.Area.H, v.ArenaH)
}

// Rect returns the screen cells covered by an arena rectangle, clipped to
// the viewport. Any non-empty overlap covers at least one cell. ok is
// false when nothing of r is inside the arena region.
func (v Viewport) Rect(r core.Rect) (core.Rect, bool) {
	x0 := floorDiv(r.X*v.Area.W, v.ArenaW)
	y0 := floorDiv(r.Y*v.Area.H, v.ArenaH)
	x1 := ceilDiv(r.Right()*v.Area.W, v.ArenaW)
	y1 := ceilDiv(r.Bottom()*v.Area.H, v.ArenaH)

	x0, x1 = max(x0, 0), min(x1, v.Area.W)
	y0, y1 = max(y0, 0), min(y1, v.Area.H)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(v.Area.X+x0, v.Area.Y+y0, x1-x0, y1-y0), true
}

// floorDiv divides rounding toward negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity; b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
