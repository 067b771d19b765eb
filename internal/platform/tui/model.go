package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/runefall/internal/config"
	"github.com/arcadelab/runefall/internal/engine"
	"github.com/arcadelab/runefall/internal/storage"
)

// The corridor keeps a fixed logical size regardless of the terminal.
// The canvas scales it to the screen, so a run plays out identically
// in an 80x24 terminal and a fullscreen one.
var corridorBounds = engine.Bounds{Width: 400, Height: 600}

// targetStep is how far one key press nudges the normalized movement
// target. The engine's smoothing turns the steps into glides.
const targetStep = 0.05

// hudLines is the vertical space reserved above and below the canvas.
const hudLines = 2

// Options carries the per-session runtime settings for a game model.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Theme    config.Theme
}

// attemptRecorder commits an attempt row whenever a run starts.
type attemptRecorder struct {
	store *storage.Store
}

func (a attemptRecorder) RunStarted(levelID string) {
	if a.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the run continues regardless
	a.store.RecordAttempt(levelID)
}

// Model is the Bubble Tea model for playing a single level.
type Model struct {
	run      *engine.Run
	store    *storage.Store
	canvas   *Canvas
	pal      *Palette
	keys     GameKeyMap
	help     help.Model
	tickRate int

	targetX float64
	targetY float64

	winSaved   bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given level.
func NewModel(desc engine.LevelDescriptor, store *storage.Store, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		run:      engine.NewRun(desc, opts.Seed, attemptRecorder{store: store}),
		store:    store,
		canvas:   NewCanvas(opts.Width, max(1, opts.Height-hudLines), corridorBounds),
		pal:      NewPalette(opts.Theme),
		keys:     DefaultGameKeyMap(),
		help:     h,
		tickRate: opts.TickRate,
		targetX:  0.5,
		targetY:  0.8,
	}
}

// Init starts the run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.run.Start(corridorBounds)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, max(1, msg.Height-hudLines))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		state := m.run.State()
		if state.Terminal() || state == engine.StatePaused {
			m.backToMenu = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Pause):
		switch m.run.State() {
		case engine.StatePlaying:
			m.run.Pause()
		case engine.StatePaused:
			m.run.Resume()
		}

	case key.Matches(msg, m.keys.Restart):
		m.run.Restart(m.run.Descriptor())
		m.winSaved = false
		m.targetX, m.targetY = 0.5, 0.8

	case key.Matches(msg, m.keys.Up):
		m.nudge(0, -targetStep)
	case key.Matches(msg, m.keys.Down):
		m.nudge(0, targetStep)
	case key.Matches(msg, m.keys.Left):
		m.nudge(-targetStep, 0)
	case key.Matches(msg, m.keys.Right):
		m.nudge(targetStep, 0)
	}

	return m, nil
}

// nudge moves the stored target and pushes it to the run. The engine
// ignores targets outside the playing state, so nudging while paused
// only updates the local copy.
func (m *Model) nudge(dx, dy float64) {
	m.targetX = clamp01(m.targetX + dx)
	m.targetY = clamp01(m.targetY + dy)
	m.run.SetTarget(m.targetX, m.targetY)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.run.Advance(1.0 / float64(m.tickRate))

	// Commit a win exactly once per run.
	if m.run.State() == engine.StateWon && !m.winSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save
			m.store.RecordCompletion(m.run.Descriptor().ID, m.run.Runes())
		}
		m.winSaved = true
	}

	return m, tickCmd(m.tickRate)
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.run.Snapshot()
	m.canvas.DrawSnapshot(snap, m.pal)

	desc := m.run.Descriptor()
	hud := fmt.Sprintf(" %s  runes %d", desc.ID, snap.Runes)
	if banner := stateBanner(snap.State); banner != "" {
		hud += "  " + bannerStyle.Render(banner)
	}

	return hudStyle.Render(hud) + "\n" +
		m.pal.Render(m.canvas) + "\n" +
		m.help.View(m.keys)
}

func stateBanner(s engine.State) string {
	switch s {
	case engine.StatePaused:
		return "PAUSED"
	case engine.StateWon:
		return "LEVEL COMPLETE - r to replay, esc for levels"
	case engine.StateLost:
		return "CRASHED - r to retry, esc for levels"
	default:
		return ""
	}
}

// BackToMenu reports whether the player asked to return to the level list.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a full-screen Bubble Tea program for the given level and
// blocks until the player quits.
func Run(desc engine.LevelDescriptor, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(desc, store, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
