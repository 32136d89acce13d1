package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gemlink/internal/config"
	"github.com/vovakirdan/gemlink/internal/core"
	"github.com/vovakirdan/gemlink/internal/registry"
)

// menu rows, top to bottom
const (
	rowPlay = iota
	rowBoard
	rowTheme
	rowLinks
	rowScores
	rowQuit
	rowCount
)

// boardChoices lists the board options; the empty preset keeps the loaded config.
var boardChoices = append([]config.Preset{""}, config.Presets()...)

var adjacencyChoices = []int{8, 4}

// MenuModel is the Bubble Tea model for the setup menu shown before a level.
type MenuModel struct {
	base      config.GemLinkConfig
	themes    []registry.ThemeInfo
	cursor    int
	board     int // Index into boardChoices
	theme     int // Index into themes
	links     int // Index into adjacencyChoices
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a setup menu starting from the loaded config.
func NewMenuModel(base config.GemLinkConfig, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		base:      base,
		themes:    registry.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, t := range m.themes {
		if t.ID == base.Theme {
			m.theme = i
		}
	}
	for i, a := range adjacencyChoices {
		if a == base.Board.Adjacency {
			m.links = i
		}
	}
	return m
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
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay:
			m.play = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.cycle(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// cycle steps the option under the cursor, wrapping around.
func (m *MenuModel) cycle(dir int) {
	wrap := func(i, n int) int { return ((i+dir)%n + n) % n }
	switch m.cursor {
	case rowBoard:
		m.board = wrap(m.board, len(boardChoices))
	case rowTheme:
		if len(m.themes) > 0 {
			m.theme = wrap(m.theme, len(m.themes))
		}
	case rowLinks:
		m.links = wrap(m.links, len(adjacencyChoices))
	}
}

// Selection returns the loaded config with the menu choices applied.
func (m MenuModel) Selection() (config.GemLinkConfig, error) {
	cfg := m.base
	if err := config.ApplyPreset(&cfg, boardChoices[m.board]); err != nil {
		return cfg, err
	}
	if len(m.themes) > 0 {
		cfg.Theme = m.themes[m.theme].ID
	}
	cfg.Board.Adjacency = adjacencyChoices[m.links]
	return cfg, nil
}

func (m MenuModel) boardLabel() string {
	preset := boardChoices[m.board]
	cfg := m.base
	//nolint:errcheck // boardChoices only holds known presets
	config.ApplyPreset(&cfg, preset)
	name := string(preset)
	if name == "" {
		name = "config"
	}
	return fmt.Sprintf("%s %dx%d, %d moves, %d target", name,
		cfg.Board.Width, cfg.Board.Height, cfg.Rules.MoveLimit, cfg.Rules.TargetGemCount)
}

func (m MenuModel) themeLabel() string {
	if len(m.themes) == 0 {
		return "none"
	}
	return m.themes[m.theme].Title
}

func (m MenuModel) linksLabel() string {
	if adjacencyChoices[m.links] == 8 {
		return "diagonals allowed"
	}
	return "orthogonal only"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  G E M   L I N K  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Link matching gems, collect the target", m.width))
	b.WriteString("\n\n")

	rows := []string{
		"Play",
		"Board: < " + m.boardLabel() + " >",
		"Theme: < " + m.themeLabel() + " >",
		"Links: < " + m.linksLabel() + " >",
		"High scores",
		"Quit",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Game            config.GemLinkConfig // Config to play with when Play is set
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the setup menu and returns the selection result.
func RunMenu(base config.GemLinkConfig, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(base, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.play:
		game, err := m.Selection()
		if err != nil {
			return result, err
		}
		result.Game = game
		result.Play = true
	default:
		result.Quit = true
	}
	return result, nil
}
