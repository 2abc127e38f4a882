// flowerquest is a small overworld game for the terminal: collect flowers
// around the meadow and bring them to your friend.
//
// Usage:
//
//	flowerquest play       - Play on the local terminal
//	flowerquest serve      - Start SSH server for remote play
//	flowerquest records    - Show completion records
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flowerquest/records.db)
//	--config <path>       - Custom quest config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flower-quest/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flowerquest",
	Short: "Flower Quest - collect flowers for a friend in your terminal",
	Long: `Flower Quest is a tiny overworld game. Walk around the meadow, pick up
flowers and deliver them to your friend to make them happy.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  records  - View completion records

Examples:
  flowerquest play
  flowerquest play --difficulty easy --seed 42
  flowerquest serve --ssh :2222
  flowerquest records`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = quest config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flowerquest/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom quest config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadQuest resolves the quest config from the global flags.
func loadQuest() (config.QuestConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.QuestConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadQuest(flagConfig)
	if err != nil {
		return config.QuestConfig{}, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger creates the charm logger used by every command.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// playerName returns the name saved with local completion records.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
