package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders-duel/internal/config"
	"github.com/vovakirdan/invaders-duel/internal/controller"
	"github.com/vovakirdan/invaders-duel/internal/core"
	"github.com/vovakirdan/invaders-duel/internal/game"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) (Model, *controller.Controller) {
	t.Helper()
	eng, err := game.NewEngine(config.DefaultDuelConfig(), game.WithSeed(7))
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	ctrl := controller.New(eng, nil)
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 32, TickRate: 60, Seed: 1}
	return NewModel(ctrl, cfg, nil), ctrl
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsGameOnSpace(t *testing.T) {
	m, ctrl := newTestModel(t)
	if !ctrl.IsStartScreen() {
		t.Fatalf("expected start screen, got %v", ctrl.Phase())
	}
	if !strings.Contains(m.View(), "SPACE INVADERS DUEL") {
		t.Error("start screen not rendered")
	}

	m, _ = send(t, m, spaceKey)
	if !ctrl.IsGameRunning() {
		t.Fatalf("expected running, got %v", ctrl.Phase())
	}
	if !strings.Contains(m.View(), "Player  Lives: 10") {
		t.Error("HUD not rendered")
	}
}

func TestModelInfoScreen(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, runeKey('i'))
	if !m.showInfo {
		t.Fatal("info screen should open from the start screen")
	}
	view := m.View()
	if !strings.Contains(view, "Gameplay Instructions") || !strings.Contains(view, "Enemy") {
		t.Errorf("info screen missing content:\n%s", view)
	}

	// Game keys are swallowed while the info screen is up.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.showInfo || !ctrl.IsStartScreen() {
		t.Fatal("enter should not leave the info screen")
	}

	// Space goes back without starting the game.
	m, _ = send(t, m, spaceKey)
	if m.showInfo {
		t.Fatal("space should close the info screen")
	}
	if !ctrl.IsStartScreen() {
		t.Fatalf("closing info started the game: %v", ctrl.Phase())
	}

	m, _ = send(t, m, runeKey('i'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showInfo {
		t.Fatal("esc should close the info screen")
	}
}

func TestModelInfoOnlyFromStartScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, runeKey('i'))
	if m.showInfo {
		t.Fatal("info screen opened while running")
	}
}

func TestModelPauseFreezesWorld(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, spaceKey) // fire
	if n := len(ctrl.Snapshot().PlayerShots); n != 1 {
		t.Fatalf("expected one shot, got %d", n)
	}
	y := ctrl.Snapshot().PlayerShots[0].Y

	m, _ = send(t, m, runeKey('p'))
	if !ctrl.IsGamePaused() {
		t.Fatalf("expected paused, got %v", ctrl.Phase())
	}
	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if got := ctrl.Snapshot().PlayerShots[0].Y; got != y {
		t.Fatalf("shot moved while paused: %d -> %d", y, got)
	}

	m, _ = send(t, m, runeKey('p'))
	_, _ = send(t, m, TickMsg{})
	if got := ctrl.Snapshot().PlayerShots[0].Y; got >= y {
		t.Fatalf("shot did not move after resume: %d -> %d", y, got)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	x := ctrl.Snapshot().Player.X

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 20-footerRows {
		t.Fatalf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if got := ctrl.Snapshot().Player.X; got != x {
		t.Fatalf("resize moved the player: %d -> %d", x, got)
	}
	if !ctrl.IsGameRunning() {
		t.Fatalf("resize changed phase to %v", ctrl.Phase())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand help")
	}
	m, _ = send(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Fatal("? should collapse help")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
