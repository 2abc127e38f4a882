package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flower-quest/internal/core"
	"github.com/vovakirdan/flower-quest/internal/games/flowerquest"
	"github.com/vovakirdan/flower-quest/internal/storage"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

// CompletionStore persists delivered quests.
type CompletionStore interface {
	SaveCompletion(c storage.Completion) (int64, error)
}

// Options carries the platform collaborators of a session.
type Options struct {
	Store  CompletionStore // May be nil: completions are then not recorded
	Logger *log.Logger     // May be nil: logging is discarded
	Player string          // Name saved with completion records

	// ScreenshotDir receives ctrl+s captures.
	// Defaults to ~/.flowerquest/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one quest session.
type Model struct {
	game     *flowerquest.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	input    *core.InputState
	holds    *holdTracker
	clock    core.Clock
	keys     KeyMap
	help     help.Model
	joystick core.Control // Control held by the mouse, if any
	state    core.GameState
	recorded bool // Whether the current session's completion was saved
	quitting bool
	now      func() time.Time
}

// NewModel creates a Bubble Tea model driving the given game.
func NewModel(game *flowerquest.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Config().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config: cfg,
		opts:   opts,
		logger: logger,
		input:  core.NewInputState(),
		holds:  newHoldTracker(game.Config().Input.HoldTimeout),
		keys:   DefaultKeyMap(),
		help:   h,
		state:  game.State(),
		now:    time.Now,
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	c := m.keys.Control(msg)
	if c == core.ControlNone {
		return m, nil
	}

	m.input.Press(c)
	if isHoldControl(c) {
		m.holds.touch(c, m.now())
	} else {
		// Edge-only control: the press edge survives until the next frame.
		m.input.Release(c)
	}
	return m, nil
}

// handleMouse turns mouse presses into the touch joystick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		mode := m.game.Mode()
		if mode == flowerquest.ModeMenu || mode == flowerquest.ModeWon {
			m.input.Press(core.ControlStart)
			m.input.Release(core.ControlStart)
			return m, nil
		}

		m.releaseJoystick()
		p := m.game.Viewport(m.screen.Width(), m.screen.Height()).ToArena(msg.X, msg.Y)
		c := core.JoystickZone(p.X, p.Y, m.game.Config().Input.JoystickSize)
		if c != core.ControlNone {
			m.input.Press(c)
			m.joystick = c
		}

	case tea.MouseActionRelease:
		m.releaseJoystick()
	}
	return m, nil
}

func (m *Model) releaseJoystick() {
	if m.joystick == core.ControlNone {
		return
	}
	if !m.holds.holding(m.joystick) {
		m.input.Release(m.joystick)
	}
	m.joystick = core.ControlNone
}

// handleResize processes window resize events. Arena coordinates do not
// depend on the screen, so the session carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(at)

	for _, c := range m.holds.expire(m.now()) {
		if c != m.joystick {
			m.input.Release(c)
		}
	}

	result := m.game.Tick(dt, m.input.Frame())
	m.state = result.State

	if result.Started {
		m.recorded = false
		m.logger.Info("session started", "player", m.opts.Player, "goal", m.state.Goal)
	}
	if result.Completed {
		m.recordCompletion()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordCompletion saves the finished session once.
func (m *Model) recordCompletion() {
	if m.recorded {
		return
	}
	m.recorded = true

	c := storage.Completion{
		Player:   m.opts.Player,
		Duration: time.Duration(m.state.Elapsed * float64(time.Second)),
		Flowers:  m.state.Score,
		Goal:     m.state.Goal,
		Jumps:    m.state.Jumps,
	}
	m.logger.Info("quest completed",
		"player", c.Player,
		"time", c.Duration.Round(time.Millisecond),
		"flowers", c.Flowers,
		"jumps", c.Jumps,
	)

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveCompletion(c); err != nil {
		m.logger.Warn("could not save completion", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".flowerquest", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for the game on the local terminal.
func Run(game *flowerquest.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse press and release drive the joystick
	)

	_, err := p.Run()
	return err
}
