package controller

import (
	"fmt"
	"strings"
)

// Phase is the externally visible lifecycle state of a session.
type Phase int

const (
	PhaseStartScreen Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStartScreen:
		return "start_screen"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p >= PhaseStartScreen && p <= PhaseGameOver
}

// ParsePhase converts a phase name back into a Phase.
func ParsePhase(s string) (Phase, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p := PhaseStartScreen; p <= PhaseGameOver; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return PhaseStartScreen, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}
