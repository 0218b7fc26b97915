package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/platform/term"
	"github.com/vovakirdan/tetris2048/internal/platform/tui"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Tetris 2048.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1.5x slower descent
  normal - configured descent interval
  hard   - 0.6x descent interval

--plain skips Bubble Tea and draws with raw ANSI escapes; the game ends
on game over or Q.

Examples:
  tetris2048 play
  tetris2048 play --difficulty hard
  tetris2048 play --seed 42
  tetris2048 play --plain`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain ANSI renderer instead of the TUI")
}

func runPlay(_ *cobra.Command, _ []string) error {
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
	rc := runtimeConfig()
	game := tetris2048.New(cfg)

	if flagPlain {
		err = runPlain(game, store, cfg, rc, logger)
	} else {
		err = tui.Run(game, store, rc, logger)
	}
	if err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runPlain plays one game through tetris2048.Loop with raw keyboard input.
func runPlain(game *tetris2048.Game, store *storage.Store, cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	// The ANSI sink draws its own layout.
	rc.Headless = true
	game.Reset(rc)

	input, err := term.OpenKeyboard(logger)
	if err != nil {
		return err
	}
	defer input.Close()

	sink := term.NewANSISink(os.Stdout)
	if err := sink.Begin(); err != nil {
		return err
	}
	defer sink.End()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &tetris2048.Loop{Game: game, Input: input, Sink: sink}
	state, err := loop.Run(ctx)
	if err != nil && !errors.Is(err, tetris2048.ErrQuit) && !errors.Is(err, context.Canceled) {
		return err
	}

	stats := game.Stats()
	fmt.Printf("\r\nScore: %d  Max tile: %d  Lines: %d\r\n", state.Score, stats.MaxTile, stats.Lines)

	if store != nil && state.GameOver && state.Score > 0 {
		entry := storage.ScoreEntry{
			RunID:      uuid.New().String(),
			Score:      state.Score,
			MaxTile:    stats.MaxTile,
			Lines:      stats.Lines,
			Pieces:     stats.Pieces,
			Difficulty: string(cfg.Difficulty),
		}
		if _, err := store.SaveScore(entry); err != nil {
			logger.Warn("could not save score", "score", state.Score, "error", err)
		}
	}
	return nil
}
