// Package config provides YAML-based duel configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid duel config")

// DuelConfig contains all tunables of the duel.
type DuelConfig struct {
	Arena       ArenaConfig      `yaml:"arena"`
	Characters  CharacterConfig  `yaml:"characters"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Bonus       BonusConfig      `yaml:"bonus"`
}

// ArenaConfig defines the logical playfield size.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CharacterConfig defines the player and enemy. Both sides share it.
type CharacterConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Speed          int `yaml:"speed"` // Units per movement step
	Lives          int `yaml:"lives"`
	EnemyTopMargin int `yaml:"enemy_top_margin"` // Enemy start Y
}

// ProjectileConfig defines bullets of both sides.
type ProjectileConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Speed      int `yaml:"speed"` // Units per tick
	CooldownMS int `yaml:"cooldown_ms"`
	HitScore   int `yaml:"hit_score"`
}

// BonusConfig defines the star pickup and its timing.
type BonusConfig struct {
	Size            int `yaml:"size"`
	VisibleMS       int `yaml:"visible_ms"`
	HiddenMS        int `yaml:"hidden_ms"`
	CheckIntervalMS int `yaml:"check_interval_ms"`
	RewardLives     int `yaml:"reward_lives"`
}

// Cooldown returns the minimum time between two accepted shots of one side.
func (p ProjectileConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMS) * time.Millisecond
}

// Visible returns how long the bonus stays on screen.
func (b BonusConfig) Visible() time.Duration {
	return time.Duration(b.VisibleMS) * time.Millisecond
}

// Hidden returns how long the bonus stays away before reappearing.
func (b BonusConfig) Hidden() time.Duration {
	return time.Duration(b.HiddenMS) * time.Millisecond
}

// CheckInterval returns the period of the background bonus check.
func (b BonusConfig) CheckInterval() time.Duration {
	return time.Duration(b.CheckIntervalMS) * time.Millisecond
}

// Validate checks that every value is usable by the engine.
func (c DuelConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0,
		"arena size %dx%d must be positive", c.Arena.Width, c.Arena.Height)

	ch := c.Characters
	check(ch.Width > 0 && ch.Height > 0,
		"character size %dx%d must be positive", ch.Width, ch.Height)
	check(ch.Width <= c.Arena.Width && ch.Height <= c.Arena.Height,
		"character size %dx%d does not fit arena %dx%d", ch.Width, ch.Height, c.Arena.Width, c.Arena.Height)
	check(ch.Speed > 0, "character speed %d must be positive", ch.Speed)
	check(ch.Lives > 0, "character lives %d must be positive", ch.Lives)
	check(ch.EnemyTopMargin >= 0 && ch.EnemyTopMargin+ch.Height <= c.Arena.Height,
		"enemy top margin %d out of range", ch.EnemyTopMargin)

	p := c.Projectiles
	check(p.Width > 0 && p.Height > 0,
		"projectile size %dx%d must be positive", p.Width, p.Height)
	check(p.Speed > 0, "projectile speed %d must be positive", p.Speed)
	check(p.CooldownMS >= 0, "projectile cooldown %dms must not be negative", p.CooldownMS)
	check(p.HitScore >= 0, "hit score %d must not be negative", p.HitScore)

	b := c.Bonus
	check(b.Size > 0 && b.Size < c.Arena.Width && b.Size < c.Arena.Height,
		"bonus size %d does not fit arena %dx%d", b.Size, c.Arena.Width, c.Arena.Height)
	check(b.VisibleMS > 0 && b.HiddenMS > 0,
		"bonus dwell times %dms/%dms must be positive", b.VisibleMS, b.HiddenMS)
	check(b.CheckIntervalMS > 0, "bonus check interval %dms must be positive", b.CheckIntervalMS)
	check(b.RewardLives >= 0, "bonus reward %d must not be negative", b.RewardLives)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Marshal renders the config as YAML.
func (c DuelConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
