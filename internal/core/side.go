package core

// Side identifies one of the two opposing participants.
// The player sits at the bottom of the arena and fires upward,
// the enemy sits at the top and fires downward.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Sides lists both sides in evaluation order.
var Sides = [...]Side{SidePlayer, SideEnemy}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opponent returns the opposing side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == SidePlayer || s == SideEnemy
}
