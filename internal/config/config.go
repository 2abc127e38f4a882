// Package config provides YAML-based quest configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid quest config")

// QuestConfig contains all tunable constants of the flower quest.
type QuestConfig struct {
	TickRate int            `yaml:"tick_rate"`
	Arena    ArenaConfig    `yaml:"arena"`
	Player   PlayerConfig   `yaml:"player"`
	NPC      NPCConfig      `yaml:"npc"`
	Flowers  FlowerConfig   `yaml:"flowers"`
	Hearts   HeartConfig    `yaml:"hearts"`
	Dialogue DialogueConfig `yaml:"dialogue"`
	Input    InputConfig    `yaml:"input"`
}

// ArenaConfig defines the playfield, centered on the origin.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Player keeps this far from the edges
}

// HalfWidth returns half the arena width.
func (a ArenaConfig) HalfWidth() float64 { return a.Width / 2 }

// HalfHeight returns half the arena height.
func (a ArenaConfig) HalfHeight() float64 { return a.Height / 2 }

// PlayerConfig defines player kinematics.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Heading      float64 `yaml:"heading"`       // Degrees, 0 = +x
	Speed        float64 `yaml:"speed"`         // Units per second
	TurnRate     float64 `yaml:"turn_rate"`     // Degrees per second
	JumpVelocity float64 `yaml:"jump_velocity"` // Initial upward velocity
	Gravity      float64 `yaml:"gravity"`       // Units per second squared
}

// NPCConfig defines the stationary quest giver.
type NPCConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Heading        float64 `yaml:"heading"`
	DeliveryRadius float64 `yaml:"delivery_radius"`
	DialogueOffset float64 `yaml:"dialogue_offset"` // Dialogue anchor above the NPC
}

// FlowerConfig defines the collectible pool.
type FlowerConfig struct {
	PoolSize     int     `yaml:"pool_size"`
	PickupRadius float64 `yaml:"pickup_radius"`
	Goal         int     `yaml:"goal"`
}

// HeartConfig defines the celebration particle burst.
type HeartConfig struct {
	Burst      int     `yaml:"burst"`
	MinVX      float64 `yaml:"min_vx"`
	MaxVX      float64 `yaml:"max_vx"`
	MinVY      float64 `yaml:"min_vy"`
	MaxVY      float64 `yaml:"max_vy"`
	Gravity    float64 `yaml:"gravity"`
	FallMargin float64 `yaml:"fall_margin"` // Distance below the arena before removal
}

// DialogueConfig defines the typewriter and the NPC's lines.
// Greeting may contain {goal}, replaced by the flower goal.
type DialogueConfig struct {
	RevealInterval time.Duration `yaml:"reveal_interval"`
	Greeting       string        `yaml:"greeting"`
	Celebration    string        `yaml:"celebration"`
}

// InputConfig defines platform input emulation.
type InputConfig struct {
	// HoldTimeout releases a key that has not repeated within this window.
	// Terminals report presses only, so held state is inferred from repeats.
	HoldTimeout  time.Duration `yaml:"hold_timeout"`
	JoystickSize float64       `yaml:"joystick_size"`
}

// Validate reports the first out-of-range value as an error wrapping
// ErrInvalidConfig.
func (c QuestConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.TickRate > 0, fmt.Sprintf("tick_rate must be positive, got %d", c.TickRate)},
		{c.Arena.Width > 0 && c.Arena.Height > 0, fmt.Sprintf("arena must have positive size, got %vx%v", c.Arena.Width, c.Arena.Height)},
		{c.Arena.Margin >= 0, fmt.Sprintf("arena.margin must not be negative, got %v", c.Arena.Margin)},
		{c.Arena.Margin < c.Arena.HalfWidth() && c.Arena.Margin < c.Arena.HalfHeight(), "arena.margin must be smaller than half the arena"},
		{c.Player.Speed >= 0, "player.speed must not be negative"},
		{c.Player.TurnRate >= 0, "player.turn_rate must not be negative"},
		{c.Player.JumpVelocity >= 0, "player.jump_velocity must not be negative"},
		{c.Player.Gravity > 0, "player.gravity must be positive"},
		{c.NPC.DeliveryRadius > 0, "npc.delivery_radius must be positive"},
		{c.Flowers.PoolSize > 0, fmt.Sprintf("flowers.pool_size must be positive, got %d", c.Flowers.PoolSize)},
		{c.Flowers.PickupRadius > 0, "flowers.pickup_radius must be positive"},
		{c.Flowers.Goal >= 0, fmt.Sprintf("flowers.goal must not be negative, got %d", c.Flowers.Goal)},
		{c.Hearts.Burst >= 0, "hearts.burst must not be negative"},
		{c.Hearts.MinVX <= c.Hearts.MaxVX, "hearts.min_vx must not exceed hearts.max_vx"},
		{c.Hearts.MinVY <= c.Hearts.MaxVY, "hearts.min_vy must not exceed hearts.max_vy"},
		{c.Hearts.Gravity > 0, "hearts.gravity must be positive"},
		{c.Hearts.FallMargin >= 0, "hearts.fall_margin must not be negative"},
		{c.Dialogue.RevealInterval > 0, "dialogue.reveal_interval must be positive"},
		{c.Input.HoldTimeout > 0, "input.hold_timeout must be positive"},
		{c.Input.JoystickSize > 0, "input.joystick_size must be positive"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown or empty values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts goal and pickup radius for a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplyPreset(cfg *QuestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Flowers.Goal = max(cfg.Flowers.Goal/2, 1)
		cfg.Flowers.PickupRadius *= 1.5
	case DifficultyHard:
		cfg.Flowers.Goal += cfg.Flowers.Goal / 2
		cfg.Flowers.PickupRadius *= 0.75
		cfg.Player.Speed *= 0.9
	}
}
