package game

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// fakeClock is a manually advanced clock shared with the background task.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// newTestEngine builds an engine on a fake clock with the star hidden and
// not due for the hidden dwell, so it stays out of the way unless a test
// places it.
func newTestEngine(t *testing.T, mutate func(*config.DuelConfig)) (*Engine, *fakeClock) {
	t.Helper()

	cfg := config.DefaultDuelConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	clock := newFakeClock()
	e, err := NewEngine(cfg, WithClock(clock.Now), WithSeed(42))
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	e.clearBonus(clock.Now())
	return e, clock
}

// placeShot puts a projectile of the given side at (x, y).
func placeShot(e *Engine, side core.Side, x, y int) {
	e.shots[side] = append(e.shots[side], newProjectile(side, x, y, e.cfg.Projectiles))
}

// placeBonus makes the star exist at (x, y).
func placeBonus(e *Engine, x, y int) {
	e.bonus.mu.Lock()
	defer e.bonus.mu.Unlock()
	e.bonus.pos = core.Point{X: x, Y: y}
	e.bonus.exists = true
}
