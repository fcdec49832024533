package game

import (
	"fmt"

	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// Character is one of the two duelists. Player and enemy share this type
// and differ only by Side.
type Character struct {
	side          core.Side
	x, y          int
	width, height int
	speed         int
	maxX, maxY    int
	lives         int
	score         int
}

func newCharacter(side core.Side, x, y int, cfg config.DuelConfig) *Character {
	c := &Character{
		side:   side,
		width:  cfg.Characters.Width,
		height: cfg.Characters.Height,
		speed:  cfg.Characters.Speed,
		maxX:   cfg.Arena.Width - cfg.Characters.Width,
		maxY:   cfg.Arena.Height - cfg.Characters.Height,
		lives:  cfg.Characters.Lives,
	}
	c.x = core.Clamp(x, 0, c.maxX)
	c.y = core.Clamp(y, 0, c.maxY)
	return c
}

// Move shifts the character by one speed quantum per unit delta and clamps
// it into the arena. dx and dy are expected in {-1, 0, 1}; the controller
// rejects anything else before it gets here.
func (c *Character) Move(dx, dy int) {
	c.x = core.Clamp(c.x+dx*c.speed, 0, c.maxX)
	c.y = core.Clamp(c.y+dy*c.speed, 0, c.maxY)
}

// IncreaseLives adds n lives.
func (c *Character) IncreaseLives(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: increase lives by %d", ErrNegativeAmount, n)
	}
	c.lives += n
	return nil
}

// DecreaseLives removes n lives. Lives may drop below zero; game over
// is decided by the engine, not here.
func (c *Character) DecreaseLives(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: decrease lives by %d", ErrNegativeAmount, n)
	}
	c.lives -= n
	return nil
}

// IncreaseScore adds n points.
func (c *Character) IncreaseScore(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: increase score by %d", ErrNegativeAmount, n)
	}
	c.score += n
	return nil
}

// X returns the left edge.
func (c *Character) X() int { return c.x }

// Y returns the top edge.
func (c *Character) Y() int { return c.y }

// Lives returns the remaining lives. It can be zero or negative once the
// character is out.
func (c *Character) Lives() int { return c.lives }

// Score returns the points earned by hitting the opponent.
func (c *Character) Score() int { return c.score }

// Rect returns the character's bounding box.
func (c *Character) Rect() core.Rect {
	return core.NewRect(c.x, c.y, c.width, c.height)
}

// State returns a value copy safe to hand out of the engine.
func (c *Character) State() CharacterState {
	return CharacterState{
		Side:   c.side,
		X:      c.x,
		Y:      c.y,
		Width:  c.width,
		Height: c.height,
		Lives:  c.lives,
		Score:  c.score,
	}
}
