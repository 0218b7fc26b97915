package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

// MenuChoice is what the user picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDifficulty
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable line in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: ChoicePlay, Title: "Play"},
	{Choice: ChoiceDifficulty, Title: "Difficulty"},
	{Choice: ChoiceScores, Title: "High Scores"},
	{Choice: ChoiceQuit, Title: "Quit"},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	config     core.RuntimeConfig
	difficulty config.DifficultyPreset
	best       int
	keyMapper  *KeyMapper
	quitting   bool
	selected   MenuChoice
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}

	best := 0
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			best = hs
		}
	}

	return MenuModel{
		items:      menuItems,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		difficulty: difficulty,
		best:       best,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.items[m.cursor].Choice == ChoiceDifficulty {
			m.difficulty = cycleDifficulty(m.difficulty, -1)
		}

	case MenuActionRight:
		if m.items[m.cursor].Choice == ChoiceDifficulty {
			m.difficulty = cycleDifficulty(m.difficulty, 1)
		}

	case MenuActionSelect:
		switch choice := m.items[m.cursor].Choice; choice {
		case ChoiceDifficulty:
			m.difficulty = cycleDifficulty(m.difficulty, 1)
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.selected = choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycleDifficulty steps through the presets, wrapping at both ends.
func cycleDifficulty(cur config.DifficultyPreset, step int) config.DifficultyPreset {
	presets := config.Presets()
	idx := 0
	for i, p := range presets {
		if p == cur {
			idx = i
		}
	}
	idx = (idx + step + len(presets)) % len(presets)
	return presets[idx]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S   2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render(fmt.Sprintf("Best score: %d", m.best)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		title := item.Title
		if item.Choice == ChoiceDifficulty {
			title = fmt.Sprintf("Difficulty: < %s >", m.difficulty)
		}

		line := "  " + title
		if i == m.cursor {
			line = menuCursor.Render("> " + title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Difficulty returns the preset currently shown in the menu.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring the visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
