package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders-duel/internal/core"
)

// KeyMap holds the key bindings of both sides and the global keys.
// The player uses the arrows and space, the enemy WASD and F.
type KeyMap struct {
	PlayerLeft  key.Binding
	PlayerRight key.Binding
	PlayerUp    key.Binding
	PlayerDown  key.Binding
	PlayerFire  key.Binding

	EnemyLeft  key.Binding
	EnemyRight key.Binding
	EnemyUp    key.Binding
	EnemyDown  key.Binding
	EnemyFire  key.Binding

	Confirm key.Binding
	Pause   key.Binding
	Info    key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayerLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "player left"),
		),
		PlayerRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "player right"),
		),
		PlayerUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "player up"),
		),
		PlayerDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "player down"),
		),
		PlayerFire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "player fire"),
		),
		EnemyLeft: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "enemy left"),
		),
		EnemyRight: key.NewBinding(
			key.WithKeys("d", "D"),
			key.WithHelp("d", "enemy right"),
		),
		EnemyUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "enemy up"),
		),
		EnemyDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "enemy down"),
		),
		EnemyFire: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "enemy fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Info: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "game info"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "B"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayerFire, k.EnemyFire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayerLeft, k.PlayerRight, k.PlayerUp, k.PlayerDown, k.PlayerFire},
		{k.EnemyLeft, k.EnemyRight, k.EnemyUp, k.EnemyDown, k.EnemyFire},
		{k.Confirm, k.Pause, k.Info, k.Back, k.Quit},
	}
}

// actionBinding pairs a binding with the action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// bindings lists every binding in match order.
func (k KeyMap) bindings() []actionBinding {
	return []actionBinding{
		{k.Quit, core.ActionQuit},
		{k.PlayerLeft, core.ActionPlayerLeft},
		{k.PlayerRight, core.ActionPlayerRight},
		{k.PlayerUp, core.ActionPlayerUp},
		{k.PlayerDown, core.ActionPlayerDown},
		{k.PlayerFire, core.ActionPlayerFire},
		{k.EnemyLeft, core.ActionEnemyLeft},
		{k.EnemyRight, core.ActionEnemyRight},
		{k.EnemyUp, core.ActionEnemyUp},
		{k.EnemyDown, core.ActionEnemyDown},
		{k.EnemyFire, core.ActionEnemyFire},
		{k.Confirm, core.ActionConfirm},
		{k.Pause, core.ActionPause},
		{k.Info, core.ActionInfo},
		{k.Back, core.ActionBack},
	}
}

// Action translates a key message to a semantic action.
// Unbound keys yield ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, b := range k.bindings() {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// ControlRows lists the per-side controls for the controls table.
func (k KeyMap) ControlRows() []table.Row {
	keys := func(b key.Binding) string { return b.Help().Key }
	return []table.Row{
		{"Move left", keys(k.PlayerLeft), keys(k.EnemyLeft)},
		{"Move right", keys(k.PlayerRight), keys(k.EnemyRight)},
		{"Move up", keys(k.PlayerUp), keys(k.EnemyUp)},
		{"Move down", keys(k.PlayerDown), keys(k.EnemyDown)},
		{"Fire", keys(k.PlayerFire), keys(k.EnemyFire)},
		{"Start/restart", keys(k.PlayerFire) + "/" + keys(k.Confirm), ""},
		{"Pause", keys(k.Pause), keys(k.Pause)},
		{"Game info", keys(k.Info), ""},
		{"Quit", keys(k.Quit), keys(k.Quit)},
	}
}
