package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the built-in quest configuration.
// It mirrors defaults/quest.yaml and is used if the embedded file fails to parse.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		TickRate: 60,
		Arena: ArenaConfig{
			Width:  900,
			Height: 650,
			Margin: 40,
		},
		Player: PlayerConfig{
			StartX:       0,
			StartY:       -200,
			Heading:      90,
			Speed:        180,
			TurnRate:     180,
			JumpVelocity: 420,
			Gravity:      1200,
		},
		NPC: NPCConfig{
			X:              0,
			Y:              220,
			Heading:        270,
			DeliveryRadius: 40,
			DialogueOffset: 50,
		},
		Flowers: FlowerConfig{
			PoolSize:     12,
			PickupRadius: 26,
			Goal:         20,
		},
		Hearts: HeartConfig{
			Burst:      15,
			MinVX:      -20,
			MaxVX:      20,
			MinVY:      30,
			MaxVY:      80,
			Gravity:    150,
			FallMargin: 20,
		},
		Dialogue: DialogueConfig{
			RevealInterval: 35 * time.Millisecond,
			Greeting:       "Please bring me {goal} flowers ✿",
			Celebration:    "Thank you! Let's celebrate! ♥",
		},
		Input: InputConfig{
			HoldTimeout:  550 * time.Millisecond,
			JoystickSize: 150,
		},
	}
}
