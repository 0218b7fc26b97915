package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Tetris 2048 in interactive menu mode.

The menu offers Play, a difficulty switch, High Scores and Quit.
After a game ends (Esc/B when over or paused), you return to the menu.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change difficulty
  Enter/Space    - Select
  Q              - Quit

Examples:
  tetris2048 menu
  tetris2048 menu --difficulty easy
  tetris2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunSession(store, cfg, runtimeConfig(), logger); err != nil {
		logger.Error("menu failed", "error", err)
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
