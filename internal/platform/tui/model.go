package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/level"
	"github.com/refexa/darkmatter/internal/registry"
	"github.com/refexa/darkmatter/internal/storage"
)

// resultReporter is implemented by modes that expose run details beyond the
// platform-level game state. Results are persisted only for such modes.
type resultReporter interface {
	Outcome() level.State
	Ticks() int
	Level() level.Level
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	difficulty  string
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the simulation.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys steer for the upcoming
// tick; the input frame is cleared after every simulation step.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case "up", "w":
		m.inputFrame.Move.Y = -1
	case "down", "s":
		m.inputFrame.Move.Y = 1
	case "left", "a":
		m.inputFrame.Move.X = -1
	case "right", "d":
		m.inputFrame.Move.X = 1
	case " ":
		m.inputFrame.Fire = true
	case "1":
		m.inputFrame.Weapon = core.WeaponBullet
	case "2":
		m.inputFrame.Weapon = core.WeaponLaser
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.resultSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save the run result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished run, best effort.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	rep, ok := m.game.(resultReporter)
	if !ok || rep.Outcome() == level.StateRunning {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.RunResult{
		LevelID:       rep.Level().ID,
		Difficulty:    m.difficulty,
		Outcome:       rep.Outcome().String(),
		DarkMatter:    float64(m.gameState.Score),
		DurationTicks: rep.Ticks(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".darkmatter", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) error {
	model := NewModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
