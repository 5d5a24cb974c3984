package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/audio"
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/session"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Options configure a Model.
type Options struct {
	Rules      *runner.Rules
	Store      *storage.Store // Optional run history
	Audio      audio.Player   // Optional, silent when nil
	Logger     *log.Logger    // Optional
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	HoldTicks  int
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	ctrl     *session.Controller
	keys     *KeyMapper
	holds    *HoldTracker
	edges    *core.EdgeDetector
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	best     int
	quitting bool
}

// NewModel creates a model on the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	best := 0
	var record func(session.Run)
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(opts.Difficulty); err == nil {
			best = hs
		}
		record = opts.Store.Recorder(func(err error) {
			if opts.Logger != nil {
				opts.Logger.Warn("could not save run", "error", err)
			}
		})
	}

	ctrl := session.NewController(opts.Rules, session.Options{
		Audio:      opts.Audio,
		Logger:     opts.Logger,
		Difficulty: opts.Difficulty,
		Seed:       cfg.Seed,
		OnGameOver: record,
	})

	return Model{
		ctrl:     ctrl,
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(opts.HoldTicks),
		edges:    &core.EdgeDetector{},
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer: NewRenderer(),
		config:   cfg,
		best:     best,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.holds.Press(action)
	return m, nil
}

// handleTick advances the session one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.ctrl.State()
	m.ctrl.Update(m.edges.Poll(m.holds.Poll()))

	if after := m.ctrl.State(); after != before {
		if after == session.StateGameOver {
			m.best = max(m.best, m.ctrl.LastRun().Score)
		}
		if after != session.StatePlaying {
			// Held gas must not leak into menu navigation.
			m.holds.Release()
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, FrameOf(m.ctrl, m.best))

	dir := filepath.Join(os.Getenv("HOME"), ".lanerunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("run_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.screen, FrameOf(m.ctrl, m.best))
	return RenderScreen(m.screen)
}

// Controller exposes the session, mainly for tests.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
