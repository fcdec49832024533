package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used for cooldowns and bonus timing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSeed seeds the RNG that places the bonus.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.bonus.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the RNG that places the bonus. When combined with
// WithSeed the option applied last wins. The engine owns r afterwards and
// guards it with the bonus lock, so r must not be used elsewhere.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.bonus.rng = r
		}
	}
}

// WithLogger sets the engine logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
