package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/planetary/internal/core"
	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/storage"
)

// Presets lists the difficulty presets in menu order.
var Presets = []string{"easy", "normal", "hard", "fixed"}

// MenuChoice is what the user picked on the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// Title menu entries
const (
	entryPlay = iota
	entryDifficulty
	entryScores
	entryQuit
	entryCount
)

// menuKeyMap only drives the help footer; input goes through KeyMapper.
type menuKeyMap struct {
	Navigate   key.Binding
	Difficulty key.Binding
	Select     key.Binding
	Scores     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Difficulty, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Navigate:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Difficulty: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "difficulty")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Scores:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	preset    int
	width     int
	height    int
	highScore int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	keys      menuKeyMap
	renderer  *lipgloss.Renderer
	choice    MenuChoice
}

// NewMenuModel creates a title menu with preset preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset string, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := MenuModel{
		preset:    presetIndex(preset),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		keys:      defaultMenuKeyMap(),
		renderer:  r,
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if high, err := store.HighScore(planetary.GameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

func presetIndex(name string) int {
	for i, p := range Presets {
		if p == name {
			return i
		}
	}
	return 1 // normal
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
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < entryCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == entryDifficulty {
			m.cyclePreset(-1)
		}

	case MenuActionRight:
		if m.cursor == entryDifficulty {
			m.cyclePreset(1)
		}

	case MenuActionScoreboard:
		m.choice = MenuChoiceScoreboard
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case entryPlay:
			m.choice = MenuChoicePlay
		case entryDifficulty:
			m.cyclePreset(1)
			return m, nil
		case entryScores:
			m.choice = MenuChoiceScoreboard
		case entryQuit:
			m.choice = MenuChoiceQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(delta int) {
	m.preset = (m.preset + delta + len(Presets)) % len(Presets)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 2)
	subtleStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	entries := []string{
		"Play",
		fmt.Sprintf("Difficulty: ‹ %s ›", m.Preset()),
		"Scoreboard",
		"Quit",
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("P L A N E T A R Y"))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Defend the cities. Keep the planet turning."))
	b.WriteString("\n\n")

	for i, e := range entries {
		if i == m.cursor {
			b.WriteString(activeStyle.Render("> " + e))
		} else {
			b.WriteString("  " + e)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("High score: %d", m.highScore)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

// Choice returns what the user picked, or MenuChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset name.
func (m MenuModel) Preset() string {
	return Presets[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
