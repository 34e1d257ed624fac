package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/level"
)

// LevelSelection holds the user's choice from the level menu.
type LevelSelection struct {
	Level int // 0 = start from the first level, otherwise index into the list
}

// LevelMenuModel is the level picker shown before a campaign run.
type LevelMenuModel struct {
	levels       []level.Level
	cursor       int
	width        int
	height       int
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelMenuModel creates a new level selection model.
func NewLevelMenuModel(levels []level.Level, width, height int) LevelMenuModel {
	return LevelMenuModel{
		levels:   levels,
		cursor:   0,
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case "down", "j", "s":
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case "enter", " ":
		m.choosing = false
		if m.cursor == 0 {
			m.selection = LevelSelection{Level: 0}
		} else {
			m.selection = LevelSelection{Level: m.cursor - 1}
		}
		return m, tea.Quit
	case "esc", "b":
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScroll adjusts the scroll offset to keep the cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visibleItems := m.height - 10 // Account for header and footer
	if visibleItems < 3 {
		visibleItems = 3
	}

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visibleItems {
		m.scrollOffset = m.cursor - visibleItems + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	normalStyle := lipgloss.NewStyle()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D A R K   M A T T E R"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(dimStyle.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	visibleItems := m.height - 10
	if visibleItems < 3 {
		visibleItems = 3
	}

	// "Start from Beginning" option
	if m.scrollOffset == 0 {
		cursor := "  "
		style := normalStyle
		if m.cursor == 0 {
			cursor = "> "
			style = activeStyle
		}
		b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	startIdx := m.scrollOffset
	endIdx := startIdx + visibleItems
	if endIdx > len(m.levels) {
		endIdx = len(m.levels)
	}

	for i := startIdx; i < endIdx; i++ {
		actualIdx := i + 1 // Account for "Start from Beginning" option
		cursor := "  "
		style := normalStyle
		if actualIdx == m.cursor {
			cursor = "> "
			style = activeStyle
		}

		entry := fmt.Sprintf("%2d. %s  (finish: %.0f dark matter)",
			m.levels[i].ID, m.levels[i].Name, m.levels[i].FinishRequirement())
		b.WriteString(centerText(style.Render(cursor+entry), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(dimStyle.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.levels) {
		b.WriteString(centerText(dimStyle.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if the user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker and returns the selection.
// A nil selection means the user backed out or quit.
func RunLevelSelector(cfg core.RuntimeConfig, levels []level.Level) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelMenuModel(levels, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
