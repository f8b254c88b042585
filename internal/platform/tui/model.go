package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Options configures the terminal front end of a session.
type Options struct {
	Runtime       core.RuntimeConfig
	Sink          audio.Sink  // nil plays nothing
	Logger        *log.Logger // nil discards
	ScreenshotDir string      // empty means ~/.dino/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *dino.Session
	screen   *core.Screen
	viewport Viewport
	sink     audio.Sink
	logger   *log.Logger

	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	clock      *core.FrameClock
	jump       *core.HoldTracker
	inputFrame core.InputFrame
	now        func() time.Time
	shotDir    string

	ambienceOn bool // Last ambience state requested by the game
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model driving session.
func NewModel(session *dino.Session, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sink := opts.Sink
	if sink == nil {
		sink = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gameCfg := session.Config()
	holdTimeout := time.Duration(gameCfg.Input.HoldTimeout * float64(time.Second))

	m := Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		sink:       sink,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		clock:      core.NewFrameClock(gameCfg.Physics.MaxDelta),
		jump:       core.NewHoldTracker(holdTimeout),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		shotDir:    opts.ScreenshotDir,
	}
	m.help.Width = cfg.ScreenW
	m.viewport = NewViewport(m.screen.Width(), m.screen.Height(), gameCfg)
	return m
}

// gameRows leaves the last terminal row for the help bar.
func gameRows(h int) int {
	return core.Max(h-1, 1)
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.State().Score)
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionPause:
		m.togglePause()
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	switch action {
	case core.ActionJump:
		m.jump.Event(m.now())
	case core.ActionDrop:
		m.jump.Release()
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// togglePause freezes or resumes the simulation. Paused sessions receive no
// ticks, so the game itself never sees the pause.
func (m *Model) togglePause() {
	m.paused = !m.paused
	m.inputFrame.Clear()
	m.jump.Reset()

	if m.paused {
		m.logger.Debug("paused")
		if m.ambienceOn {
			m.sink.StopAmbience()
		}
		return
	}

	m.logger.Debug("resumed")
	m.clock.Rebase()
	if m.ambienceOn {
		m.sink.StartAmbience()
	}
}

// handleResize processes window resize events. The world is resolution
// independent, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.viewport = NewViewport(m.screen.Width(), m.screen.Height(), m.session.Config())
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	before := m.session.State()
	pressed, released := m.jump.Sample(now)
	in := dino.Input{
		JumpPressed:  pressed,
		JumpReleased: released,
		Restart:      m.inputFrame.Has(core.ActionRestart) || (before.GameOver && pressed),
	}

	dt := m.clock.Tick(now)
	intents := m.session.Step(in, dt)
	m.dispatchAudio(intents)
	m.logTransition(before, m.session.State())

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatchAudio forwards sound and ambience intents to the sink.
func (m *Model) dispatchAudio(intents dino.Intents) {
	for _, in := range intents {
		switch v := in.(type) {
		case dino.PlaySound:
			m.logger.Debug("sound", "kind", v.Sound)
			switch v.Sound {
			case dino.SoundJump:
				m.sink.PlayJump()
			case dino.SoundCollision:
				m.sink.PlayCollision()
			}
		case dino.Ambience:
			m.ambienceOn = v.On
			if v.On {
				m.sink.StartAmbience()
			} else {
				m.sink.StopAmbience()
			}
		}
	}
}

func (m *Model) logTransition(before, after dino.State) {
	if before.Phase == after.Phase {
		return
	}
	switch after.Phase {
	case dino.PhaseGameOver:
		m.logger.Info("run over", "run", after.Runs, "score", after.Score)
	case dino.PhasePlaying:
		m.logger.Info("run started", "run", after.Runs)
	}
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	DrawIntents(m.screen, m.session.Intents(), m.viewport)
	if m.paused {
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".dino", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dino_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for session.
func Run(session *dino.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
