package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/runefall/internal/catalog"
	"github.com/arcadelab/runefall/internal/engine"
	"github.com/arcadelab/runefall/internal/storage"
)

// LevelsKeyMap defines the key bindings for the level picker.
type LevelsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultLevelsKeyMap returns default key bindings.
func DefaultLevelsKeyMap() LevelsKeyMap {
	return LevelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelsModel is the Bubble Tea model for the level picker screen.
type LevelsModel struct {
	levels     []engine.LevelDescriptor
	store      *storage.Store
	totalRunes int
	table      table.Model
	help       help.Model
	keys       LevelsKeyMap
	width      int
	height     int
	selected   *engine.LevelDescriptor
	quitting   bool
}

// NewLevelsModel creates a level picker over the given catalog.
func NewLevelsModel(cat *catalog.Catalog, store *storage.Store, width, height int) LevelsModel {
	totalRunes := 0
	if store != nil {
		if total, err := store.TotalRunes(); err == nil {
			totalRunes = total
		}
	}

	h := help.New()
	h.ShowAll = false

	m := LevelsModel{
		levels:     cat.Levels(),
		store:      store,
		totalRunes: totalRunes,
		keys:       DefaultLevelsKeyMap(),
		help:       h,
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	return m
}

func (m *LevelsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 10},
		{Title: "Difficulty", Width: 10},
		{Title: "Runes Req", Width: 10},
		{Title: "Best", Width: 6},
		{Title: "Status", Width: 10},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		best := "-"
		if m.store != nil {
			if b, err := m.store.BestRunes(lvl.ID); err == nil && b > 0 {
				best = fmt.Sprintf("%d", b)
			}
		}
		status := "locked"
		if catalog.Unlocked(lvl, m.totalRunes) {
			status = "open"
		}
		rows[i] = table.Row{
			lvl.ID,
			lvl.Difficulty.String(),
			fmt.Sprintf("%d", lvl.RequiredRunes),
			best,
			status,
		}
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m LevelsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.levels) {
				lvl := m.levels[idx]
				if catalog.Unlocked(lvl, m.totalRunes) {
					m.selected = &lvl
					return m, tea.Quit
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m LevelsModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUNEFALL - %d runes banked", m.totalRunes)))
	b.WriteString("\n\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Selected returns the level chosen for play, or nil.
func (m LevelsModel) Selected() *engine.LevelDescriptor {
	return m.selected
}

// IsQuitting reports whether the user left the picker without choosing.
func (m LevelsModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelPicker runs the picker standalone and returns the chosen
// level, or nil if the user backed out.
func RunLevelPicker(cat *catalog.Catalog, store *storage.Store, width, height int) (*engine.LevelDescriptor, error) {
	p := tea.NewProgram(
		NewLevelsModel(cat, store, width, height),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(LevelsModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
