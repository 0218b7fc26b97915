package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestGameModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	return NewGameModel(tetris2048.New(config.Default()), store, testRuntime(), quietLogger())
}

func stepGame(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm
}

func stepSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm
}

func TestGameModelTickConsumesInput(t *testing.T) {
	m := newTestGameModel(t, nil)
	before := m.game.Snapshot().Tick

	m = stepGame(t, m, runeKey("p"))
	assert.Equal(t, before, m.game.Snapshot().Tick, "keys alone do not step")

	m = stepGame(t, m, TickMsg{Loop: m.loopID})
	assert.Equal(t, before+1, m.game.Snapshot().Tick)
	assert.True(t, m.State().Paused)
	assert.True(t, m.inputFrame.Empty())
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m := newTestGameModel(t, nil)
	before := m.game.Snapshot().Tick

	m = stepGame(t, m, TickMsg{Loop: "someone-else"})
	assert.Equal(t, before, m.game.Snapshot().Tick)
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m := newTestGameModel(t, nil)

	m = stepGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "live game ignores back")

	m = stepGame(t, m, runeKey("p"))
	m = stepGame(t, m, TickMsg{Loop: m.loopID})
	m = stepGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t, nil)
	m = stepGame(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m := newTestGameModel(t, nil)
	for i := 0; i < 3; i++ {
		m = stepGame(t, m, TickMsg{Loop: m.loopID})
	}
	snap := m.game.Snapshot()

	m = stepGame(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	after := m.game.Snapshot()
	assert.Equal(t, snap.Tick, after.Tick)
	assert.Equal(t, snap.Tiles, after.Tiles)

	m = stepGame(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, tetris2048.StatePausedSmall, m.game.Snapshot().State)
}

func TestGameModelSaveScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestGameModel(t, store).WithPlayer("alice")
	m.gameState = core.GameState{Score: 128, GameOver: true}
	m.saveScore()
	assert.True(t, m.scoreSaved)

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 128, scores[0].Score)
	assert.Equal(t, "alice", scores[0].Player)
	assert.Equal(t, m.runID, scores[0].RunID)
	assert.Equal(t, "normal", scores[0].Difficulty)
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestGameModel(t, store)
	m.gameState = core.GameState{GameOver: true}
	m.saveScore()

	scores, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestGameModelRestartNewRun(t *testing.T) {
	m := newTestGameModel(t, nil)
	oldRun := m.runID
	m.gameState.GameOver = true
	m.scoreSaved = true

	m = stepGame(t, m, runeKey("r"))
	m = stepGame(t, m, TickMsg{Loop: m.loopID})

	assert.NotEqual(t, oldRun, m.runID)
	assert.False(t, m.scoreSaved)
	assert.False(t, m.State().GameOver)
	assert.Equal(t, uint64(0), m.game.Snapshot().Tick)
}

func TestSessionPlayAndBack(t *testing.T) {
	s := NewSessionModel(nil, config.Default(), testRuntime(), "bob", quietLogger())
	assert.NotEmpty(t, s.ID())
	assert.Contains(t, s.View(), "T E T R I S")

	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, s.current)
	require.NotNil(t, s.gameModel)
	assert.Equal(t, "bob", s.gameModel.player)

	s = stepSession(t, s, runeKey("p"))
	s = stepSession(t, s, TickMsg{Loop: s.gameModel.loopID})
	s = stepSession(t, s, runeKey("b"))
	assert.Equal(t, screenMenu, s.current)
	assert.Nil(t, s.gameModel)
	assert.False(t, s.quitting)
}

func TestSessionDifficultyCarriesIntoGame(t *testing.T) {
	s := NewSessionModel(nil, config.Default(), testRuntime(), "", quietLogger())

	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, s.menu.Difficulty())

	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyUp})
	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, s.gameModel)
	assert.Equal(t, config.DifficultyHard, s.gameModel.game.Config().Difficulty)
	assert.Less(t, s.gameModel.game.Interval(), config.Default().TickInterval())
}

func TestSessionScoresAndBack(t *testing.T) {
	s := NewSessionModel(nil, config.Default(), testRuntime(), "", quietLogger())

	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyDown})
	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenScores, s.current)
	assert.Contains(t, s.View(), "No scores recorded yet")

	s = stepSession(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.current)
}

func TestSessionQuitFromMenu(t *testing.T) {
	s := NewSessionModel(nil, config.Default(), testRuntime(), "", quietLogger())
	s = stepSession(t, s, runeKey("q"))
	assert.True(t, s.quitting)
	assert.Empty(t, s.View())
}

func TestCycleDifficulty(t *testing.T) {
	assert.Equal(t, config.DifficultyHard, cycleDifficulty(config.DifficultyNormal, 1))
	assert.Equal(t, config.DifficultyEasy, cycleDifficulty(config.DifficultyHard, 1))
	assert.Equal(t, config.DifficultyHard, cycleDifficulty(config.DifficultyEasy, -1))
}
