package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/storage"
)

// Runs view layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the profile sidebar
	sidebarWidth       = 20  // Width of the profile sidebar
	maxRuns            = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the runs view.
type RunsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextProfile key.Binding
	PrevProfile key.Binding
	Order       key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProfile, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextProfile, k.PrevProfile},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next profile"),
		),
		PrevProfile: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev profile"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model of the run history.
type RunsModel struct {
	store       *storage.Store
	profiles    []string
	cursor      int  // Selected profile
	recent      bool // Newest first instead of longest first
	runs        []storage.RunEntry
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates a run history view starting at profile.
func NewRunsModel(store *storage.Store, profile string, width, height int) RunsModel {
	if profile == "" {
		profile = storage.DefaultProfile
	}
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		if profiles, err := store.Profiles(); err == nil {
			m.profiles = profiles
		}
	}
	m.cursor = indexOf(m.profiles, profile)
	if m.cursor < 0 {
		m.profiles = append([]string{profile}, m.profiles...)
		m.cursor = 0
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Distance", Width: 9},
		{Title: "Coins", Width: 6},
		{Title: "XP", Width: 6},
		{Title: "Kills", Width: 6},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)),
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

func (m *RunsModel) profile() string {
	if len(m.profiles) == 0 {
		return storage.DefaultProfile
	}
	return m.profiles[m.cursor]
}

// loadRuns loads the runs of the selected profile.
func (m *RunsModel) loadRuns() {
	m.runs = nil
	if m.store != nil {
		var (
			runs []storage.RunEntry
			err  error
		)
		if m.recent {
			runs, err = m.store.RecentRuns(m.profile(), maxRuns)
		} else {
			runs, err = m.store.TopRuns(m.profile(), maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Distance),
			fmt.Sprintf("%d", r.Coins),
			fmt.Sprintf("%d", r.XP),
			fmt.Sprintf("%d", r.Kills),
			formatDuration(r.DurationMs),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration prints milliseconds as m:ss.
func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the runs model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs view.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextProfile):
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor + 1) % len(m.profiles)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevProfile):
			if len(m.profiles) > 0 {
				m.cursor = (m.cursor - 1 + len(m.profiles)) % len(m.profiles)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.recent = !m.recent
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	order := "LONGEST RUNS"
	if m.recent {
		order = "RECENT RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("%s - %s", order, m.profile()), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableRendered))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the profile list.
func (m RunsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Profiles\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, name := range m.profiles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nGo for a run!")
	}

	return m.table.View()
}

// RunRuns runs the run history screen.
func RunRuns(store *storage.Store, profile string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(store, profile, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
