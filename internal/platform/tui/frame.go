package tui

import (
	"fmt"

	"github.com/vovakirdan/invaders-duel/internal/controller"
	"github.com/vovakirdan/invaders-duel/internal/core"
	"github.com/vovakirdan/invaders-duel/internal/game"
)

// Glyphs used for arena entities.
const (
	ShotChar  = '|'
	BonusChar = '*'
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// Frame is everything needed to draw one frame.
type Frame struct {
	Snapshot game.Snapshot
	Phase    controller.Phase
	Sky      *Starfield
	Fault    error // Set when the session ended on an internal fault
}

// DrawFrame renders a complete frame into dst: background, arena, HUD
// and the overlay for the current phase.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	area := core.NewRect(0, hudRows, dst.Width(), max(dst.Height()-hudRows, 0))
	vp := NewViewport(f.Snapshot.ArenaW, f.Snapshot.ArenaH, area)

	if f.Sky != nil {
		f.Sky.Draw(dst, area)
	}
	if f.Phase != controller.PhaseStartScreen {
		drawArena(dst, vp, f.Snapshot)
	}
	drawHUD(dst, f.Snapshot, f.Phase)

	switch f.Phase {
	case controller.PhaseStartScreen:
		drawStartScreen(dst)
	case controller.PhasePaused:
		drawCenteredBox(dst, core.ColorBrightYellow, "GAME PAUSED", "Press P to resume")
	case controller.PhaseGameOver:
		drawGameOver(dst, f.Snapshot, f.Fault)
	}
}

// drawArena draws both characters, all shots and the bonus star.
func drawArena(dst *core.Screen, vp Viewport, snap game.Snapshot) {
	if snap.Bonus.Exists {
		if r, ok := vp.Rect(snap.Bonus.Rect()); ok {
			cx, cy := r.Center()
			dst.SetColored(cx, cy, BonusChar, core.ColorBrightYellow)
		}
	}

	for _, side := range core.Sides {
		c := snap.Character(side)
		if r, ok := vp.Rect(c.Rect()); ok {
			dst.DrawBox(r, core.SideColor(side))
		}
	}

	for _, side := range core.Sides {
		for _, p := range snap.Shots(side) {
			shot := core.NewRect(p.X, p.Y, snap.ShotW, snap.ShotH)
			if r, ok := vp.Rect(shot); ok {
				cx, cy := r.Center()
				dst.SetColored(cx, cy, ShotChar, core.SideColor(side))
			}
		}
	}
}

// drawHUD draws both sides' lives and scores on the top row. The player
// is anchored left and the enemy right. Narrow terminals get compact
// labels, and the enemy label never starts inside the player's.
func drawHUD(dst *core.Screen, snap game.Snapshot, phase controller.Phase) {
	player := fmt.Sprintf("Player  Lives: %d  Score: %d", snap.Player.Lives, snap.Player.Score)
	enemy := fmt.Sprintf("Enemy  Lives: %d  Score: %d", snap.Enemy.Lives, snap.Enemy.Score)
	if len(player)+len(enemy)+3 > dst.Width() {
		player = fmt.Sprintf("P L:%d S:%d", snap.Player.Lives, snap.Player.Score)
		enemy = fmt.Sprintf("E L:%d S:%d", snap.Enemy.Lives, snap.Enemy.Score)
	}

	playerEnd := 1 + len(player)
	enemyX := max(dst.Width()-len(enemy)-1, playerEnd+1)

	dst.DrawTextColored(1, 0, player, core.SideColor(core.SidePlayer))
	dst.DrawTextColored(enemyX, 0, enemy, core.SideColor(core.SideEnemy))

	const paused = "PAUSED"
	if phase == controller.PhasePaused && enemyX-playerEnd >= len(paused)+2 {
		x := playerEnd + (enemyX-playerEnd-len(paused))/2
		dst.DrawTextColored(x, 0, paused, core.ColorGray)
	}
}

func drawStartScreen(dst *core.Screen) {
	drawCenteredBox(dst, core.ColorBrightCyan,
		"SPACE INVADERS DUEL",
		"Press SPACE or ENTER to start",
		"",
		"[ Game Info: press I ]",
	)
}

func drawGameOver(dst *core.Screen, snap game.Snapshot, fault error) {
	if fault != nil {
		drawCenteredBox(dst, core.ColorRed,
			"GAME STOPPED",
			"An internal error ended the round",
			"Press SPACE to restart",
		)
		return
	}

	winner, ok := snap.Winner()
	if !ok {
		drawCenteredBox(dst, core.ColorBrightYellow,
			"Game Over - Draw!",
			fmt.Sprintf("Final Scores  Player: %d  Enemy: %d", snap.Player.Score, snap.Enemy.Score),
			"Press SPACE to restart",
		)
		return
	}

	name := "Player"
	if winner == core.SideEnemy {
		name = "Enemy"
	}
	drawCenteredBox(dst, core.SideColor(winner),
		fmt.Sprintf("Game Over - %s Won!", name),
		fmt.Sprintf("%s - Final Score: %d", name, snap.Character(winner).Score),
		"Press SPACE to restart",
	)
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
// The first line is the title; the rest follow after a blank row.
func drawCenteredBox(dst *core.Screen, border core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, border)

	centered := func(y int, text string, c core.Color) {
		x := box.X + (boxW-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}
	centered(box.Y+1, title, border)
	for i, l := range lines {
		centered(box.Y+3+i, l, core.ColorWhite)
	}
}
