package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML QuestConfig
	if err := yaml.Unmarshal(defaultQuestYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if fromYAML != DefaultQuestConfig() {
		t.Errorf("embedded YAML and DefaultQuestConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultQuestConfig())
	}
}

func TestDefaultConstants(t *testing.T) {
	cfg := DefaultQuestConfig()

	if cfg.Arena.HalfWidth() != 450 || cfg.Arena.HalfHeight() != 325 {
		t.Errorf("arena half extents = %v x %v, expected 450 x 325", cfg.Arena.HalfWidth(), cfg.Arena.HalfHeight())
	}
	if cfg.Flowers.Goal != 20 || cfg.Flowers.PoolSize != 12 || cfg.Flowers.PickupRadius != 26 {
		t.Errorf("unexpected flower constants: %+v", cfg.Flowers)
	}
	if cfg.Dialogue.RevealInterval != 35*time.Millisecond {
		t.Errorf("reveal interval = %v, expected 35ms", cfg.Dialogue.RevealInterval)
	}
	if cfg.Hearts.Burst != 15 || cfg.NPC.DeliveryRadius != 40 {
		t.Errorf("unexpected burst/delivery constants: %d, %v", cfg.Hearts.Burst, cfg.NPC.DeliveryRadius)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuestConfig)
	}{
		{"negative goal", func(c *QuestConfig) { c.Flowers.Goal = -1 }},
		{"empty pool", func(c *QuestConfig) { c.Flowers.PoolSize = 0 }},
		{"zero arena", func(c *QuestConfig) { c.Arena.Width = 0 }},
		{"margin too large", func(c *QuestConfig) { c.Arena.Margin = 400 }},
		{"inverted heart range", func(c *QuestConfig) { c.Hearts.MinVY = 90 }},
		{"zero reveal interval", func(c *QuestConfig) { c.Dialogue.RevealInterval = 0 }},
		{"zero tick rate", func(c *QuestConfig) { c.TickRate = 0 }},
		{"zero gravity", func(c *QuestConfig) { c.Player.Gravity = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadQuestCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.yaml")
	data := []byte("flowers:\n  goal: 5\ndialogue:\n  reveal_interval: 50ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuest(path)
	if err != nil {
		t.Fatalf("LoadQuest() failed: %v", err)
	}

	if cfg.Flowers.Goal != 5 {
		t.Errorf("goal = %d, expected 5", cfg.Flowers.Goal)
	}
	if cfg.Dialogue.RevealInterval != 50*time.Millisecond {
		t.Errorf("reveal interval = %v, expected 50ms", cfg.Dialogue.RevealInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Flowers.PoolSize != 12 || cfg.Arena.Width != 900 {
		t.Errorf("defaults not preserved: pool=%d width=%v", cfg.Flowers.PoolSize, cfg.Arena.Width)
	}
}

func TestLoadQuestErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadQuest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("flowers: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadQuest(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("flowers:\n  goal: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadQuest(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative goal should fail validation, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultQuestConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Flowers.Goal != 10 || easy.Flowers.PickupRadius != 39 {
		t.Errorf("easy preset: goal=%d radius=%v", easy.Flowers.Goal, easy.Flowers.PickupRadius)
	}

	hard := DefaultQuestConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Flowers.Goal != 30 || hard.Flowers.PickupRadius != 19.5 {
		t.Errorf("hard preset: goal=%d radius=%v", hard.Flowers.Goal, hard.Flowers.PickupRadius)
	}

	normal := DefaultQuestConfig()
	ApplyPreset(&normal, ParsePreset("normal"))
	if normal != DefaultQuestConfig() {
		t.Error("normal preset should not change the config")
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse as empty")
	}
}
