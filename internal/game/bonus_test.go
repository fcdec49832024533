package game

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/invaders-duel/internal/config"
)

func TestBonusDueOnFirstRefresh(t *testing.T) {
	clock := newFakeClock()
	e, err := NewEngine(config.DefaultDuelConfig(), WithClock(clock.Now), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}

	if e.Bonus().Exists {
		t.Fatal("bonus should start absent")
	}
	e.Update()
	if !e.Bonus().Exists {
		t.Error("bonus should appear on the first tick of a new engine")
	}
}

func TestBonusDwellTimes(t *testing.T) {
	e, clock := newTestEngine(t, nil)

	steps := []struct {
		advance time.Duration
		exists  bool
	}{
		{10 * time.Second, false},      // hidden dwell not yet exceeded
		{time.Millisecond, true},       // appears
		{20 * time.Second, true},       // visible dwell not yet exceeded
		{time.Millisecond, false},      // disappears
		{5 * time.Second, false},       // still hidden
		{5*time.Second + 1, true},      // back again
		{19 * time.Second, true},
		{time.Second + time.Nanosecond, false},
	}

	for i, step := range steps {
		clock.Advance(step.advance)
		e.refreshBonus(clock.Now())
		if got := e.Bonus().Exists; got != step.exists {
			t.Fatalf("step %d (+%v): exists = %v, expected %v", i, step.advance, got, step.exists)
		}
	}
}

func TestBonusRefreshIsIdempotent(t *testing.T) {
	e, clock := newTestEngine(t, nil)
	clock.Advance(11 * time.Second)

	if !e.refreshBonus(clock.Now()) {
		t.Fatal("first refresh past the deadline should toggle")
	}
	first := e.Bonus()

	for i := 0; i < 5; i++ {
		if e.refreshBonus(clock.Now()) {
			t.Fatalf("repeated refresh %d toggled again", i)
		}
	}
	if e.Bonus() != first {
		t.Errorf("repeated refresh changed the bonus: %+v -> %+v", first, e.Bonus())
	}
}

func TestBonusPlacementWithinArena(t *testing.T) {
	e, clock := newTestEngine(t, nil)
	cfg := e.Config()

	for i := 0; i < 500; i++ {
		clock.Advance(21 * time.Second)
		e.refreshBonus(clock.Now())

		b := e.Bonus()
		if b.X < 0 || b.X >= cfg.Arena.Width-cfg.Bonus.Size || b.Y < 0 || b.Y >= cfg.Arena.Height-cfg.Bonus.Size {
			t.Fatalf("bonus placed out of range at (%d, %d)", b.X, b.Y)
		}
	}
}

func TestBonusPositionReportsAbsence(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	if _, ok := e.BonusPosition(); ok {
		t.Error("hidden bonus should report no position")
	}
	placeBonus(e, 30, 40)
	if pos, ok := e.BonusPosition(); !ok || pos.X != 30 || pos.Y != 40 {
		t.Errorf("BonusPosition() = (%+v, %v), expected (30, 40)", pos, ok)
	}
}

func TestBonusTaskRefreshes(t *testing.T) {
	clock := newFakeClock()
	cfg := config.DefaultDuelConfig()
	cfg.Bonus.CheckIntervalMS = 1

	e, err := NewEngine(cfg, WithClock(clock.Now), WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	e.Start(context.Background())
	defer e.Stop()

	waitFor(t, func() bool { return e.Bonus().Exists })

	clock.Advance(21 * time.Second)
	waitFor(t, func() bool { return !e.Bonus().Exists })
}

func TestBonusTaskStopInterruptsSleep(t *testing.T) {
	e, _ := newTestEngine(t, nil) // 10s interval

	e.Start(context.Background())
	if !e.Running() {
		t.Fatal("Running() should be true after Start")
	}

	start := time.Now()
	e.Stop()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Stop took %v, expected it to interrupt the 10s sleep", elapsed)
	}
	if e.Running() {
		t.Error("Running() should be false after Stop")
	}

	// Second Stop is a no-op.
	e.Stop()
}

func TestBonusTaskStopsOnParentCancel(t *testing.T) {
	e, clock := newTestEngine(t, func(c *config.DuelConfig) { c.Bonus.CheckIntervalMS = 1 })

	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)
	done := e.done
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not exit after parent cancellation")
	}

	// Nothing mutates the bonus once the task has exited.
	before := e.Bonus()
	clock.Advance(time.Hour)
	time.Sleep(20 * time.Millisecond)
	if e.Bonus() != before {
		t.Error("bonus changed after the task was cancelled")
	}

	e.Stop()
}

func TestBonusTaskRestartsAfterParentCancel(t *testing.T) {
	e, clock := newTestEngine(t, func(c *config.DuelConfig) { c.Bonus.CheckIntervalMS = 1 })

	ctx, cancel := context.WithCancel(context.Background())
	e.Start(ctx)
	done := e.done
	cancel()
	<-done

	if e.Running() {
		t.Fatal("Running() should report false once the task exited on its own")
	}

	e.Start(context.Background())
	defer e.Stop()
	if !e.Running() {
		t.Fatal("Start after an exited task should launch a new one")
	}

	clock.Advance(11 * time.Second)
	waitFor(t, func() bool { return e.Bonus().Exists })
}

func TestBonusTaskStartIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	e.Start(context.Background())
	done := e.done
	e.Start(context.Background())
	if e.done != done {
		t.Error("second Start should not launch another task")
	}
	e.Stop()
}

func TestBonusTaskRunsAlongsideUpdates(t *testing.T) {
	e, clock := newTestEngine(t, func(c *config.DuelConfig) { c.Bonus.CheckIntervalMS = 1 })

	e.Start(context.Background())
	defer e.Stop()

	// Exercised under -race: both paths share the bonus lock.
	for i := 0; i < 2000; i++ {
		clock.Advance(100 * time.Millisecond)
		e.Update()
		_ = e.Snapshot()
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met within 2s")
}

func TestBonusPlacementUsesInjectedRand(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	clock := newFakeClock()
	e, err := NewEngine(cfg, WithClock(clock.Now), WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatal(err)
	}

	ref := rand.New(rand.NewSource(5))
	wantX := ref.Intn(cfg.Arena.Width - cfg.Bonus.Size)
	wantY := ref.Intn(cfg.Arena.Height - cfg.Bonus.Size)

	e.Update()
	pos, ok := e.BonusPosition()
	if !ok {
		t.Fatal("bonus should appear on the first tick")
	}
	if pos.X != wantX || pos.Y != wantY {
		t.Errorf("bonus at (%d, %d), expected (%d, %d)", pos.X, pos.Y, wantX, wantY)
	}
}
