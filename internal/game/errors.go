package game

import "errors"

// ErrNegativeAmount is returned by lives and score mutators when asked to
// apply a negative amount. The mutation is not applied.
var ErrNegativeAmount = errors.New("game: amount must not be negative")
