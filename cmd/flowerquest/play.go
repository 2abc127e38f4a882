package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flower-quest/internal/core"
	"github.com/vovakirdan/flower-quest/internal/games/flowerquest"
	"github.com/vovakirdan/flower-quest/internal/platform/tui"
	"github.com/vovakirdan/flower-quest/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on the local terminal",
	Long: `Start a quest on this terminal.

Controls:
  W/Up       - Walk forward
  A/Left     - Turn left
  D/Right    - Turn right
  Space      - Jump
  I          - Inventory
  Enter      - Start (again)
  Mouse      - Hold a side of the meadow's center to steer
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Half the flowers, bigger pickup radius
  normal - The classic quest
  hard   - More flowers, smaller pickup radius, slower walk

Examples:
  flowerquest play
  flowerquest play --difficulty hard
  flowerquest play --config ./my-quest.yaml --log-file quest.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	questCfg, err := loadQuest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "flowerquest")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := flowerquest.New(questCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: questCfg.TickRate,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Logger: logger,
		Player: playerName(),
	}

	// Open records storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
	}

	logger.Info("starting quest", "goal", questCfg.Flowers.Goal, "seed", flagSeed, "tick_rate", cfg.TickRate)
	runErr := tui.Run(game, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
