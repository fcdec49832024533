package game

import (
	"github.com/vovakirdan/invaders-duel/internal/core"
)

// advanceShots moves every projectile of a side one tick and silently
// drops those that left the arena.
func (e *Engine) advanceShots(side core.Side) {
	kept := e.shots[side][:0]
	for _, p := range e.shots[side] {
		p.Advance()
		if p.OffScreen(e.cfg.Arena.Height) {
			continue
		}
		kept = append(kept, p)
	}
	e.shots[side] = kept
}

// resolveCollisions consumes every projectile of a side that hits
// something. Survivors are kept for the next tick.
func (e *Engine) resolveCollisions(side core.Side) {
	kept := e.shots[side][:0]
	for _, p := range e.shots[side] {
		if e.resolveHit(p) {
			continue
		}
		kept = append(kept, p)
	}
	e.shots[side] = kept
}

// resolveHit applies at most one outcome for a projectile. The opposing
// character is checked before the bonus, so a shot overlapping both only
// damages the character.
func (e *Engine) resolveHit(p Projectile) bool {
	shooter := e.character(p.owner)
	target := e.character(p.owner.Opponent())

	if p.Rect().Intersects(target.Rect()) {
		target.lives--
		shooter.score += e.cfg.Projectiles.HitScore
		e.logger.Debug("hit", "shooter", p.owner, "target_lives", target.lives, "shooter_score", shooter.score)
		return true
	}

	if e.claimBonus(p.Rect()) {
		shooter.lives += e.cfg.Bonus.RewardLives
		e.logger.Debug("bonus claimed", "side", p.owner, "lives", shooter.lives)
		return true
	}

	return false
}
