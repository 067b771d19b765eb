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
	"github.com/arcadelab/runefall/internal/storage"
)

// ProgressModel is the Bubble Tea model for the progress screen. It
// shows per-level attempt and completion history in catalog order.
type ProgressModel struct {
	table    table.Model
	help     help.Model
	keys     LevelsKeyMap
	total    int
	width    int
	height   int
	quitting bool
}

// NewProgressModel creates a progress view over the given catalog and store.
func NewProgressModel(cat *catalog.Catalog, store *storage.Store, width, height int) ProgressModel {
	var stats map[string]*storage.LevelStats
	total := 0
	if store != nil {
		if s, err := store.AllStats(); err == nil {
			stats = s
		}
		if t, err := store.TotalRunes(); err == nil {
			total = t
		}
	}

	columns := []table.Column{
		{Title: "Level", Width: 10},
		{Title: "Attempts", Width: 9},
		{Title: "Wins", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "Last Played", Width: 16},
	}

	var rows []table.Row
	for _, lvl := range cat.Levels() {
		s := stats[lvl.ID]
		if s == nil {
			continue
		}
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("Jan 02 15:04")
		}
		rows = append(rows, table.Row{
			lvl.ID,
			fmt.Sprintf("%d", s.Attempts),
			fmt.Sprintf("%d", s.Completions),
			fmt.Sprintf("%d", s.BestRunes),
			last,
		})
	}

	tableHeight := height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
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

	h := help.New()
	h.ShowAll = false

	return ProgressModel{
		table:  t,
		help:   h,
		keys:   DefaultLevelsKeyMap(),
		total:  total,
		width:  width,
		height: height,
	}
}

// Init initializes the progress view.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress view.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back),
			key.Matches(msg, m.keys.Select):
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress view.
func (m ProgressModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("PROGRESS - %d runes banked", m.total)))
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No runs recorded yet.\nPlay a level to start your history."))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// RunProgress runs the progress screen standalone.
func RunProgress(cat *catalog.Catalog, store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewProgressModel(cat, store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
