package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappycat/internal/core"
	"github.com/vovakirdan/flappycat/internal/games/flappy"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options configures a Model.
type Options struct {
	Cols, Rows    int // initial terminal size
	TickRate      int
	Available     func(sprite string) bool
	Renderer      *lipgloss.Renderer // defaults to lipgloss.DefaultRenderer()
	ScreenshotDir string             // empty disables screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	session  *flappy.Session
	surface  *Surface
	palette  Palette
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	opts     Options
	quitting bool
}

// NewModel creates a Bubble Tea model that drives session.
func NewModel(session *flappy.Session, opts Options) Model {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = session.Config().Screen.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w, h := session.Config().Screen.Width, session.Config().Screen.Height
	return Model{
		session: session,
		surface: NewSurface(w, h, opts.Cols, max(opts.Rows-helpHeight, 0), opts.Available),
		palette: NewPalette(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   core.NewInputFrame(),
		opts:    opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok {
			m.input.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game keys; quit and screenshot are handled here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.input.Push(ev)
	}
	return m, nil
}

// handleTick runs one frame with the input queued since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Frame(m.input)
	m.input.Clear()
	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.render()
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Error("screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("flappycat_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.surface.Screen().String()), 0o600); err != nil {
		m.opts.Logger.Error("screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

func (m Model) render() {
	m.surface.Begin()
	m.session.Render(m.surface)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return m.palette.RenderScreen(m.surface.Screen()) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program on the local terminal.
func Run(session *flappy.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(session, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
