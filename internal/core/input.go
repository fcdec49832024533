package core

// Action represents a semantic game action, abstracted from physical key presses.
// Both humans share one keyboard, so every movement and fire action is bound
// to a side.
type Action int

const (
	ActionNone Action = iota

	ActionPlayerLeft  // Left arrow
	ActionPlayerRight // Right arrow
	ActionPlayerUp    // Up arrow
	ActionPlayerDown  // Down arrow
	ActionPlayerFire  // Space - also starts and restarts the game

	ActionEnemyLeft  // A
	ActionEnemyRight // D
	ActionEnemyUp    // W
	ActionEnemyDown  // S
	ActionEnemyFire  // F

	ActionConfirm // Enter - start or restart
	ActionPause   // P - pause/unpause
	ActionInfo    // I - open the info screen
	ActionBack    // B, Escape - leave the info screen
	ActionQuit    // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlayerLeft:
		return "PlayerLeft"
	case ActionPlayerRight:
		return "PlayerRight"
	case ActionPlayerUp:
		return "PlayerUp"
	case ActionPlayerDown:
		return "PlayerDown"
	case ActionPlayerFire:
		return "PlayerFire"
	case ActionEnemyLeft:
		return "EnemyLeft"
	case ActionEnemyRight:
		return "EnemyRight"
	case ActionEnemyUp:
		return "EnemyUp"
	case ActionEnemyDown:
		return "EnemyDown"
	case ActionEnemyFire:
		return "EnemyFire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionInfo:
		return "Info"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Movement decodes a movement action into the side it drives and its
// unit deltas. ok is false for actions that do not move anything.
func (a Action) Movement() (side Side, dx, dy int, ok bool) {
	switch a {
	case ActionPlayerLeft:
		return SidePlayer, -1, 0, true
	case ActionPlayerRight:
		return SidePlayer, 1, 0, true
	case ActionPlayerUp:
		return SidePlayer, 0, -1, true
	case ActionPlayerDown:
		return SidePlayer, 0, 1, true
	case ActionEnemyLeft:
		return SideEnemy, -1, 0, true
	case ActionEnemyRight:
		return SideEnemy, 1, 0, true
	case ActionEnemyUp:
		return SideEnemy, 0, -1, true
	case ActionEnemyDown:
		return SideEnemy, 0, 1, true
	}
	return SidePlayer, 0, 0, false
}

// Fire decodes a fire action into the shooting side.
func (a Action) Fire() (Side, bool) {
	switch a {
	case ActionPlayerFire:
		return SidePlayer, true
	case ActionEnemyFire:
		return SideEnemy, true
	}
	return SidePlayer, false
}
