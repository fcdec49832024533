// Package controller mediates external commands against the session phase.
// It validates input, forwards legal commands to the simulation engine and
// turns unexpected faults inside a tick into a game over instead of a crash.
package controller

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders-duel/internal/core"
	"github.com/vovakirdan/invaders-duel/internal/game"
)

var (
	// ErrInvalidDelta is returned for movement deltas outside {-1, 0, 1}.
	ErrInvalidDelta = errors.New("controller: movement delta must be -1, 0 or 1")

	// ErrUnknownSide is returned for commands addressed to no known side.
	ErrUnknownSide = errors.New("controller: unknown side")

	// ErrUnknownPhase is returned when setting or parsing an unknown phase.
	ErrUnknownPhase = errors.New("controller: unknown phase")

	// ErrTickFault wraps a panic recovered while advancing the simulation.
	ErrTickFault = errors.New("controller: tick fault")
)

// Engine is the part of the simulation the controller drives.
type Engine interface {
	Move(side core.Side, dx, dy int)
	Shoot(side core.Side) bool
	Update()
	Reset()
	GameOver() bool
	Snapshot() game.Snapshot
}

var _ Engine = (*game.Engine)(nil)

// Controller gates commands by phase. It is driven from the frame loop and
// is not safe for concurrent use.
type Controller struct {
	engine Engine
	phase  Phase
	fault  error // Fault that ended the current round, if any
	logger *log.Logger
}

// New creates a controller on the start screen. A nil logger discards output.
func New(engine Engine, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		engine: engine,
		phase:  PhaseStartScreen,
		logger: logger,
	}
}

// acceptsCommands reports whether move and shoot commands reach the engine.
func (c *Controller) acceptsCommands() bool {
	return c.phase == PhaseRunning && !c.engine.GameOver()
}

// Move moves a side's character. Deltas outside {-1, 0, 1} are rejected
// with ErrInvalidDelta and dropped. Valid moves outside the running phase
// are ignored without error.
func (c *Controller) Move(side core.Side, dx, dy int) error {
	if !side.Valid() {
		err := fmt.Errorf("%w: %d", ErrUnknownSide, side)
		c.logger.Warn("invalid move input", "err", err)
		return err
	}
	if core.Abs(dx) > 1 || core.Abs(dy) > 1 {
		err := fmt.Errorf("%w: got (%d, %d)", ErrInvalidDelta, dx, dy)
		c.logger.Warn("invalid move input", "side", side, "err", err)
		return err
	}
	if !c.acceptsCommands() {
		return nil
	}
	c.engine.Move(side, dx, dy)
	return nil
}

// Shoot fires for a side while the game is running. It reports whether a
// projectile was created; cooldown and phase rejections are silent.
func (c *Controller) Shoot(side core.Side) bool {
	if !side.Valid() {
		c.logger.Warn("invalid shoot input", "err", fmt.Errorf("%w: %d", ErrUnknownSide, side))
		return false
	}
	if !c.acceptsCommands() {
		return false
	}
	return c.engine.Shoot(side)
}

// Tick advances the simulation one step while running. Paused, start and
// game-over phases leave the world frozen. A panic inside the engine is
// recovered, logged, forces the game-over phase and is returned wrapped in
// ErrTickFault.
func (c *Controller) Tick() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTickFault, r)
			c.Fail(err)
		}
	}()

	if c.phase != PhaseRunning {
		return nil
	}
	c.engine.Update()
	if c.engine.GameOver() {
		c.setPhase(PhaseGameOver)
	}
	return nil
}

// Fail records a fault raised outside the engine, for example while
// rendering, and moves to the game-over phase.
func (c *Controller) Fail(err error) {
	c.logger.Error("frame failed", "err", err)
	c.fault = err
	c.setPhase(PhaseGameOver)
}

// Fault returns the error that ended the current round, or nil when the
// round ended normally or is still in progress.
func (c *Controller) Fault() error { return c.fault }

// Reset restarts the round in the engine and keeps the current phase.
func (c *Controller) Reset() {
	c.engine.Reset()
	c.logger.Info("game reset")
}

// Restart resets the round and resumes play.
func (c *Controller) Restart() {
	c.Reset()
	c.fault = nil
	c.setPhase(PhaseRunning)
}

// SetPhase moves to the given phase.
func (c *Controller) SetPhase(p Phase) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}
	c.setPhase(p)
	return nil
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.logger.Info("phase changed", "from", c.phase, "to", p)
	c.phase = p
}

// TogglePause switches between running and paused. Other phases are left alone.
func (c *Controller) TogglePause() {
	switch c.phase {
	case PhaseRunning:
		c.setPhase(PhasePaused)
	case PhasePaused:
		c.setPhase(PhaseRunning)
	}
}

// Handle applies one semantic input action according to the phase:
// fire or confirm starts the game from the start screen and restarts it
// after game over, pause toggles between running and paused, and movement
// and fire reach the engine only while running.
func (c *Controller) Handle(a core.Action) {
	switch c.phase {
	case PhaseStartScreen:
		if a == core.ActionConfirm || a == core.ActionPlayerFire {
			c.setPhase(PhaseRunning)
		}
	case PhaseRunning:
		if a == core.ActionPause {
			c.TogglePause()
			return
		}
		if side, dx, dy, ok := a.Movement(); ok {
			_ = c.Move(side, dx, dy)
			return
		}
		if side, ok := a.Fire(); ok {
			c.Shoot(side)
		}
	case PhasePaused:
		if a == core.ActionPause {
			c.TogglePause()
		}
	case PhaseGameOver:
		if a == core.ActionConfirm || a == core.ActionPlayerFire {
			c.Restart()
		}
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) IsGameRunning() bool { return c.phase == PhaseRunning }
func (c *Controller) IsGamePaused() bool  { return c.phase == PhasePaused }
func (c *Controller) IsStartScreen() bool { return c.phase == PhaseStartScreen }
func (c *Controller) IsGameOver() bool    { return c.phase == PhaseGameOver }

// Snapshot returns the current world state for rendering.
func (c *Controller) Snapshot() game.Snapshot {
	return c.engine.Snapshot()
}
