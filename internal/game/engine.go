// Package game implements the duel simulation: two characters, their
// projectiles, the timed bonus star, collision resolution, scoring and the
// sticky game-over rule.
//
// The engine is driven from a single frame loop. The only exception is the
// bonus star, which a background task also refreshes; its state is guarded
// by its own lock.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// Engine owns every entity of the duel.
type Engine struct {
	cfg    config.DuelConfig
	now    func() time.Time
	logger *log.Logger

	player   *Character
	enemy    *Character
	shots    [2][]Projectile // indexed by core.Side
	lastShot [2]time.Time
	gameOver bool

	bonus bonusState

	taskMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine creates an engine with both characters at their start
// positions. The bonus starts absent and is due on the first refresh.
// The background task is not started; call Start for that.
func NewEngine(cfg config.DuelConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	e := &Engine{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = discardLogger()
	}
	if e.bonus.rng == nil {
		e.bonus.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.spawnCharacters()
	return e, nil
}

// spawnCharacters places the player centered on the bottom edge and the
// enemy centered near the top edge.
func (e *Engine) spawnCharacters() {
	arena, ch := e.cfg.Arena, e.cfg.Characters
	x := (arena.Width - ch.Width) / 2
	e.player = newCharacter(core.SidePlayer, x, arena.Height-ch.Height, e.cfg)
	e.enemy = newCharacter(core.SideEnemy, x, ch.EnemyTopMargin, e.cfg)
}

func (e *Engine) character(side core.Side) *Character {
	if side == core.SideEnemy {
		return e.enemy
	}
	return e.player
}

// Move moves a side's character by one step per unit delta.
// Unknown sides are ignored.
func (e *Engine) Move(side core.Side, dx, dy int) {
	if !side.Valid() {
		return
	}
	e.character(side).Move(dx, dy)
}

// Shoot fires a projectile from the front edge of a side's character,
// centered on its width. Shots inside the cooldown window are dropped
// silently, as are unknown sides; the result reports whether a
// projectile was created.
func (e *Engine) Shoot(side core.Side) bool {
	if !side.Valid() {
		return false
	}
	now := e.now()
	if now.Sub(e.lastShot[side]) < e.cfg.Projectiles.Cooldown() {
		return false
	}

	c := e.character(side)
	pc := e.cfg.Projectiles
	x := c.x + c.width/2 - pc.Width/2
	y := c.y - pc.Height
	if side == core.SideEnemy {
		y = c.y + c.height
	}

	e.shots[side] = append(e.shots[side], newProjectile(side, x, y, pc))
	e.lastShot[side] = now
	e.logger.Debug("shot", "side", side, "x", x, "y", y)
	return true
}

// Update advances the world one tick. Nothing happens once the game is over.
func (e *Engine) Update() {
	if e.gameOver {
		return
	}

	for _, side := range core.Sides {
		e.advanceShots(side)
		e.resolveCollisions(side)
	}
	e.refreshBonus(e.now())

	if e.player.lives <= 0 || e.enemy.lives <= 0 {
		e.gameOver = true
		e.logger.Info("game over",
			"player_lives", e.player.lives, "enemy_lives", e.enemy.lives,
			"player_score", e.player.score, "enemy_score", e.enemy.score)
	}
}

// Reset starts a fresh round: new characters with full lives and zero
// score, no projectiles, no cooldowns, game over cleared. The star is
// hidden and reappears after the hidden dwell measured from now.
func (e *Engine) Reset() {
	e.spawnCharacters()
	for _, side := range core.Sides {
		e.shots[side] = nil
		e.lastShot[side] = time.Time{}
	}
	e.gameOver = false
	e.clearBonus(e.now())
}

// GameOver reports whether either side has run out of lives.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.DuelConfig {
	return e.cfg
}

// Player returns the player's state.
func (e *Engine) Player() CharacterState {
	return e.player.State()
}

// Enemy returns the enemy's state.
func (e *Engine) Enemy() CharacterState {
	return e.enemy.State()
}

// Character returns the state of either side, or the zero state for an
// unknown side.
func (e *Engine) Character(side core.Side) CharacterState {
	if !side.Valid() {
		return CharacterState{}
	}
	return e.character(side).State()
}

// ShotCount returns how many projectiles of a side are in flight.
func (e *Engine) ShotCount(side core.Side) int {
	if !side.Valid() {
		return 0
	}
	return len(e.shots[side])
}

// ShotPosition returns the position of the i-th projectile of a side.
// ok is false when the side is unknown or i is out of range.
func (e *Engine) ShotPosition(side core.Side, i int) (core.Point, bool) {
	if !side.Valid() || i < 0 || i >= len(e.shots[side]) {
		return core.Point{}, false
	}
	return e.shots[side][i].Position(), true
}

// Shots returns a copy of the positions of a side's projectiles.
// An unknown side has none.
func (e *Engine) Shots(side core.Side) []core.Point {
	if !side.Valid() {
		return nil
	}
	out := make([]core.Point, len(e.shots[side]))
	for i, p := range e.shots[side] {
		out[i] = p.Position()
	}
	return out
}

// Bonus returns the star's state.
func (e *Engine) Bonus() BonusState {
	e.bonus.mu.Lock()
	defer e.bonus.mu.Unlock()

	return BonusState{
		Exists: e.bonus.exists,
		X:      e.bonus.pos.X,
		Y:      e.bonus.pos.Y,
		Size:   e.cfg.Bonus.Size,
	}
}

// BonusPosition returns the star's position while it exists.
func (e *Engine) BonusPosition() (core.Point, bool) {
	b := e.Bonus()
	if !b.Exists {
		return core.Point{}, false
	}
	return core.Point{X: b.X, Y: b.Y}, true
}

// Snapshot returns a deep copy of everything a renderer needs.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		ArenaW:      e.cfg.Arena.Width,
		ArenaH:      e.cfg.Arena.Height,
		Player:      e.player.State(),
		Enemy:       e.enemy.State(),
		PlayerShots: e.Shots(core.SidePlayer),
		EnemyShots:  e.Shots(core.SideEnemy),
		ShotW:       e.cfg.Projectiles.Width,
		ShotH:       e.cfg.Projectiles.Height,
		Bonus:       e.Bonus(),
		GameOver:    e.gameOver,
	}
}
