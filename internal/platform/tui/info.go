package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// instructions is the gameplay text shown on the info screen.
var instructions = []string{
	"Start the game: press SPACE.",
	"Player: move with the arrow keys, shoot with SPACE.",
	"Enemy: move with WASD, shoot with F.",
	"Pause the game: press P.",
	"Shoot the star to gain extra lives.",
	"Every hit scores points and costs the target a life.",
	"The game ends when someone runs out of lives.",
	"Restart after game over: press SPACE.",
}

var (
	infoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	infoTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	infoHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// NewControlsTable builds a read-only table of per-side controls.
func NewControlsTable(k KeyMap) table.Model {
	rows := k.ControlRows()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Action", Width: 14},
			{Title: "Player", Width: 14},
			{Title: "Enemy", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable, so the cursor row looks like any other.
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// ControlsView renders the controls table as a string.
func ControlsView(k KeyMap) string {
	return NewControlsTable(k).View()
}

// InfoView renders the game info screen centered in a width x height area.
func InfoView(k KeyMap, width, height int) string {
	var body strings.Builder
	for _, line := range instructions {
		body.WriteString("- ")
		body.WriteString(line)
		body.WriteString("\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		infoTitleStyle.Render("Gameplay Instructions"),
		"",
		infoTextStyle.Render(strings.TrimRight(body.String(), "\n")),
		"",
		ControlsView(k),
		"",
		infoHintStyle.Render("Press B, ESC or SPACE to go back"),
	)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
