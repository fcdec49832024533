package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/invaders-duel/internal/core"
)

// bonusState is the star pickup. It is the only state shared between the
// frame loop and the background refresh task; every access goes through mu.
// The position survives while the star is absent but only exists is
// authoritative for collisions and rendering.
type bonusState struct {
	mu         sync.Mutex
	pos        core.Point
	exists     bool
	lastToggle time.Time
	rng        *rand.Rand
}

// refreshBonus toggles the star when the dwell time of its current state
// has elapsed: visible for Bonus.Visible, absent for Bonus.Hidden. It is
// driven purely by elapsed time, so calling it again before the next
// deadline changes nothing.
func (e *Engine) refreshBonus(now time.Time) bool {
	return e.refreshBonusCtx(context.Background(), now)
}

// refreshBonusCtx is refreshBonus for the background task: once ctx is
// cancelled it no longer mutates anything.
func (e *Engine) refreshBonusCtx(ctx context.Context, now time.Time) bool {
	b := &e.bonus
	b.mu.Lock()
	defer b.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}

	dwell := e.cfg.Bonus.Hidden()
	if b.exists {
		dwell = e.cfg.Bonus.Visible()
	}
	if now.Sub(b.lastToggle) <= dwell {
		return false
	}

	size := e.cfg.Bonus.Size
	b.pos = core.Point{
		X: b.rng.Intn(e.cfg.Arena.Width - size),
		Y: b.rng.Intn(e.cfg.Arena.Height - size),
	}
	b.lastToggle = now
	b.exists = !b.exists

	if b.exists {
		e.logger.Debug("bonus spawned", "x", b.pos.X, "y", b.pos.Y)
	} else {
		e.logger.Debug("bonus expired")
	}
	return true
}

// claimBonus consumes the star if it exists and overlaps r.
func (e *Engine) claimBonus(r core.Rect) bool {
	b := &e.bonus
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.exists || !r.Intersects(e.bonusRectLocked()) {
		return false
	}
	b.exists = false
	return true
}

// clearBonus hides the star and restarts the hidden dwell at now.
func (e *Engine) clearBonus(now time.Time) {
	b := &e.bonus
	b.mu.Lock()
	defer b.mu.Unlock()

	b.exists = false
	b.lastToggle = now
}

func (e *Engine) bonusRectLocked() core.Rect {
	size := e.cfg.Bonus.Size
	return core.NewRect(e.bonus.pos.X, e.bonus.pos.Y, size, size)
}

// Start launches the background task that re-checks the star every
// Bonus.CheckInterval. It is a no-op when the task is already running.
func (e *Engine) Start(ctx context.Context) {
	e.taskMu.Lock()
	defer e.taskMu.Unlock()

	if e.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done

	go e.bonusLoop(ctx, done)
}

// Stop cancels the background task and waits for it to exit.
// Safe to call when the task is not running.
func (e *Engine) Stop() {
	e.taskMu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.taskMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the background task is active.
func (e *Engine) Running() bool {
	e.taskMu.Lock()
	defer e.taskMu.Unlock()
	return e.cancel != nil
}

// bonusLoop runs until ctx is done. When it exits on its own, for example
// after the parent context was canceled, it releases its slot so Running
// reports false and a later Start launches a fresh task.
func (e *Engine) bonusLoop(ctx context.Context, done chan struct{}) {
	defer func() {
		e.taskMu.Lock()
		if e.done == done {
			e.cancel()
			e.cancel, e.done = nil, nil
		}
		e.taskMu.Unlock()
		close(done)
	}()

	interval := e.cfg.Bonus.CheckInterval()
	e.logger.Debug("bonus task started", "interval", interval)
	defer e.logger.Debug("bonus task stopped")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		e.refreshBonusCtx(ctx, e.now())

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
