// Package term is the plain terminal front end: raw keyboard input and an
// ANSI renderer driven by tetris2048.Loop, without Bubble Tea.
package term

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/games/tetris2048"
)

// keyBuffer is the number of key events queued between ticks.
const keyBuffer = 20

// rank orders actions when several keys arrive within one tick.
var rank = map[core.Action]int{
	core.ActionQuit:      7,
	core.ActionPause:     6,
	core.ActionHardDrop:  5,
	core.ActionRotate:    4,
	core.ActionMoveLeft:  3,
	core.ActionMoveRight: 2,
	core.ActionMoveDown:  1,
}

// KeyboardInput reads raw key presses and yields one action per poll.
type KeyboardInput struct {
	events <-chan keyboard.KeyEvent
	logger *log.Logger
	owned  bool // events came from keyboard.GetKeys and must be closed
}

var _ tetris2048.InputSource = (*KeyboardInput)(nil)

// OpenKeyboard puts the terminal in raw mode and starts reading keys.
// Call Close to restore the terminal.
func OpenKeyboard(logger *log.Logger) (*KeyboardInput, error) {
	events, err := keyboard.GetKeys(keyBuffer)
	if err != nil {
		return nil, fmt.Errorf("term: open keyboard: %w", err)
	}
	in := NewKeyboardInput(events, logger)
	in.owned = true
	return in, nil
}

// NewKeyboardInput wraps an existing event channel.
func NewKeyboardInput(events <-chan keyboard.KeyEvent, logger *log.Logger) *KeyboardInput {
	if logger == nil {
		logger = log.Default()
	}
	return &KeyboardInput{events: events, logger: logger}
}

// PollEvent drains every queued key without blocking and returns the
// highest-ranked action among them, or core.ActionNone.
// A keyboard error or a closed channel reads as quit.
func (k *KeyboardInput) PollEvent() core.Action {
	best := core.ActionNone
	for {
		select {
		case ev, ok := <-k.events:
			if !ok {
				k.logger.Error("keyboard events channel closed")
				return core.ActionQuit
			}
			if ev.Err != nil {
				k.logger.Error("keyboard error", "error", ev.Err)
				return core.ActionQuit
			}
			if a := MapKey(ev); rank[a] > rank[best] {
				best = a
			}
		default:
			return best
		}
	}
}

// Close releases the keyboard and restores the terminal mode.
func (k *KeyboardInput) Close() error {
	if !k.owned {
		return nil
	}
	return keyboard.Close()
}

// MapKey translates one key event to a game action.
func MapKey(ev keyboard.KeyEvent) core.Action {
	switch {
	case ev.Key == keyboard.KeyCtrlC, ev.Key == keyboard.KeyEsc, ev.Rune == 'q':
		return core.ActionQuit
	case ev.Key == keyboard.KeyArrowLeft, ev.Rune == 'a':
		return core.ActionMoveLeft
	case ev.Key == keyboard.KeyArrowRight, ev.Rune == 'd':
		return core.ActionMoveRight
	case ev.Key == keyboard.KeyArrowDown, ev.Rune == 's':
		return core.ActionMoveDown
	case ev.Key == keyboard.KeyArrowUp, ev.Rune == 'w':
		return core.ActionRotate
	case ev.Key == keyboard.KeySpace, ev.Rune == ' ':
		return core.ActionHardDrop
	case ev.Rune == 'p':
		return core.ActionPause
	}
	return core.ActionNone
}
