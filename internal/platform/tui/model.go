package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders-duel/internal/controller"
	"github.com/vovakirdan/invaders-duel/internal/core"
	"github.com/vovakirdan/invaders-duel/internal/game"
)

// footerRows is the number of rows reserved for the help footer.
const footerRows = 1

// Model is the Bubble Tea model driving one duel session.
type Model struct {
	ctrl     *controller.Controller
	screen   *core.Screen
	sky      *Starfield
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	showInfo bool
	quitting bool
}

// NewModel creates a model for the given controller.
func NewModel(ctrl *controller.Controller, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctrl:   ctrl,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		sky:    NewStarfield(cfg.Seed),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		logger: logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showInfo {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.PlayerFire) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Info) && m.ctrl.IsStartScreen():
		m.showInfo = true
		return m, nil
	}

	m.ctrl.Handle(m.keys.Action(msg))
	return m, nil
}

// handleResize re-allocates the screen. The running game is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step. Faults are recorded by the
// controller and shown by the game-over overlay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Tick(); err != nil {
		m.logger.Debug("tick fault", "err", err)
	}
	if m.ctrl.IsGameRunning() || m.ctrl.IsStartScreen() {
		m.sky.Advance()
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display. A panic while
// drawing ends the round instead of the program.
func (m Model) View() (out string) {
	if m.quitting {
		return ""
	}
	if m.showInfo {
		return InfoView(m.keys, m.config.ScreenW, m.config.ScreenH)
	}

	defer func() {
		if r := recover(); r != nil {
			m.ctrl.Fail(fmt.Errorf("render: %v", r))
			out = "render failed, press SPACE to restart"
		}
	}()

	DrawFrame(m.screen, Frame{
		Snapshot: m.ctrl.Snapshot(),
		Phase:    m.ctrl.Phase(),
		Sky:      m.sky,
		Fault:    m.ctrl.Fault(),
	})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the bonus task of the engine and runs the Bubble Tea program
// until the user quits or ctx is canceled. The task is stopped on return.
func Run(ctx context.Context, engine *game.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	engine.Start(ctx)
	defer engine.Stop()

	ctrl := controller.New(engine, logger)
	model := NewModel(ctrl, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil {
		logger.Error("program exited", "err", err)
	}
	return err
}
