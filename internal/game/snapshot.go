package game

import (
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// CharacterState is a read-only copy of a character.
type CharacterState struct {
	Side   core.Side
	X, Y   int
	Width  int
	Height int
	Lives  int
	Score  int
}

// Rect returns the character's bounding box.
func (c CharacterState) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Width, c.Height)
}

// BonusState is a read-only copy of the star. X and Y keep the last
// placement even when Exists is false.
type BonusState struct {
	Exists bool
	X, Y   int
	Size   int
}

// Rect returns the star's bounding box.
func (b BonusState) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Snapshot contains the complete state of the duel at one instant.
// Uses value types and copied slices only, so holders cannot reach back
// into the engine.
type Snapshot struct {
	ArenaW, ArenaH int

	Player CharacterState
	Enemy  CharacterState

	PlayerShots []core.Point
	EnemyShots  []core.Point
	ShotW       int
	ShotH       int

	Bonus    BonusState
	GameOver bool
}

// Character returns the state of either side.
func (s Snapshot) Character(side core.Side) CharacterState {
	if side == core.SideEnemy {
		return s.Enemy
	}
	return s.Player
}

// Shots returns the projectile positions of either side.
func (s Snapshot) Shots(side core.Side) []core.Point {
	if side == core.SideEnemy {
		return s.EnemyShots
	}
	return s.PlayerShots
}

// Winner returns the side still standing. ok is false while the game runs
// and when both sides ran out of lives on the same tick.
func (s Snapshot) Winner() (side core.Side, ok bool) {
	if !s.GameOver {
		return core.SidePlayer, false
	}
	playerDown, enemyDown := s.Player.Lives <= 0, s.Enemy.Lives <= 0
	switch {
	case playerDown && enemyDown:
		return core.SidePlayer, false
	case playerDown:
		return core.SideEnemy, true
	default:
		return core.SidePlayer, true
	}
}
