package game

import (
	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// Projectile is a bullet in flight. The owner decides the direction:
// player shots travel up, enemy shots travel down.
type Projectile struct {
	owner         core.Side
	x, y          int
	width, height int
	speed         int
}

func newProjectile(owner core.Side, x, y int, cfg config.ProjectileConfig) Projectile {
	return Projectile{
		owner:  owner,
		x:      x,
		y:      y,
		width:  cfg.Width,
		height: cfg.Height,
		speed:  cfg.Speed,
	}
}

// Direction returns -1 for upward shots and 1 for downward shots.
func (p Projectile) Direction() int {
	if p.owner == core.SidePlayer {
		return -1
	}
	return 1
}

// Advance moves the projectile one tick along its direction.
func (p *Projectile) Advance() {
	p.y += p.Direction() * p.speed
}

// OffScreen reports whether the projectile has left the arena on the side
// it travels towards.
func (p Projectile) OffScreen(arenaH int) bool {
	if p.owner == core.SidePlayer {
		return p.y < -p.height
	}
	return p.y+p.height > arenaH
}

// Position returns the top-left corner.
func (p Projectile) Position() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.x, p.y, p.width, p.height)
}
