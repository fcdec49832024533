package config

import (
	_ "embed"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the built-in duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		Arena: ArenaConfig{
			Width:  1000,
			Height: 600,
		},
		Characters: CharacterConfig{
			Width:          120,
			Height:         100,
			Speed:          10,
			Lives:          10,
			EnemyTopMargin: 10,
		},
		Projectiles: ProjectileConfig{
			Width:      10,
			Height:     20,
			Speed:      10,
			CooldownMS: 500,
			HitScore:   50,
		},
		Bonus: BonusConfig{
			Size:            50,
			VisibleMS:       20000,
			HiddenMS:        10000,
			CheckIntervalMS: 10000,
			RewardLives:     2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDuelYAML
}
