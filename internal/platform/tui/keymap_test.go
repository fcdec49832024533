package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders-duel/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionPlayerLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionPlayerRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPlayerUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionPlayerDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPlayerFire},
		{"a", runeKey('a'), core.ActionEnemyLeft},
		{"D", runeKey('D'), core.ActionEnemyRight},
		{"w", runeKey('w'), core.ActionEnemyUp},
		{"s", runeKey('s'), core.ActionEnemyDown},
		{"f", runeKey('f'), core.ActionEnemyFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runeKey('p'), core.ActionPause},
		{"i", runeKey('i'), core.ActionInfo},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapSidesDoNotOverlap(t *testing.T) {
	keys := DefaultKeyMap()
	seen := make(map[string]string)
	for _, b := range keys.bindings() {
		for _, k := range b.binding.Keys() {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.action)
			}
			seen[k] = b.action.String()
		}
	}
}

func TestControlRows(t *testing.T) {
	rows := DefaultKeyMap().ControlRows()
	if len(rows) == 0 {
		t.Fatal("expected control rows")
	}
	for _, r := range rows {
		if len(r) != 3 {
			t.Errorf("row %v has %d columns, want 3", r, len(r))
		}
	}
	fire := rows[4]
	if fire[1] != "space" || fire[2] != "f" {
		t.Errorf("fire row = %v", fire)
	}
}
