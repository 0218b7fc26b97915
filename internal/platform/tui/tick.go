// Package tui provides the Bubble Tea front end for tetris2048.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain so a chain left over from a previous game
// in the same session is dropped instead of doubling the pace.
type TickMsg struct {
	Loop string
	At   time.Time
}

// tickCmd returns a Bubble Tea command that fires one TickMsg after interval.
func tickCmd(loop string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
