package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flower-quest/internal/platform/tui"
	"github.com/vovakirdan/flower-quest/internal/storage"
)

var (
	flagRecordsAll   bool
	flagRecordsLimit int
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show completion records",
	Long: `Display the fastest completed quests.

On a terminal this opens an interactive table; press Tab to switch between
the fastest quests and your own history. Otherwise a plain table is printed.

Examples:
  flowerquest records
  flowerquest records --all
  flowerquest records --difficulty easy   # Records for the easy goal
  flowerquest records --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagRecordsAll, "all", false, "Include records for every goal")
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of records to print (non-interactive)")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete all records")
}

func runRecords(_ *cobra.Command, _ []string) {
	questCfg, err := loadQuest()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	goal := questCfg.Flowers.Goal
	if flagRecordsAll {
		goal = 0
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecordsClear {
		if err := store.ClearCompletions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Records cleared.")
		return
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if err := tui.RunRecords(store, playerName(), goal, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	records, err := store.Fastest(goal, flagRecordsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Fastest Quests")
	fmt.Println()
	fmt.Println(tui.RenderRecords(records))

	best, err := store.PersonalBest(playerName(), questCfg.Flowers.Goal)
	if err == nil && best > 0 {
		fmt.Printf("\nYour best: %s\n", tui.FormatDuration(best))
	}
}
