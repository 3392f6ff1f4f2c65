package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/session"
	"github.com/vovakirdan/knight-run/internal/upgrade"
)

// ShopExit tells how the shop was left.
type ShopExit int

const (
	ShopOpen ShopExit = iota
	ShopPlay
	ShopBack
	ShopQuit
)

var (
	shopTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	shopWalletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
	shopOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
	shopErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	shopBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ShopModel is the Bubble Tea model of the upgrade shop.
type ShopModel struct {
	sess       *session.Session
	table      table.Model
	help       help.Model
	keys       ShopKeyMap
	status     string
	statusOK   bool
	width      int
	height     int
	standalone bool // Quits the program on exit
	exit       ShopExit
}

// NewShopModel creates a shop for sess.
func NewShopModel(sess *session.Session, width, height int) ShopModel {
	h := help.New()
	h.Width = width

	m := ShopModel{
		sess:   sess,
		help:   h,
		keys:   DefaultShopKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.refreshRows()
	return m
}

// createTable creates the upgrade table sized to the window.
func (m *ShopModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Upgrade", Width: 16},
		{Title: "Level", Width: 7},
		{Title: "Value", Width: 8},
		{Title: "Cost", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 4)),
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

// refreshRows rebuilds the rows from the upgrade engine, keeping the cursor.
func (m *ShopModel) refreshRows() {
	ups := m.sess.Upgrades().All()
	rows := make([]table.Row, len(ups))
	for i, u := range ups {
		rows[i] = upgradeRow(u)
	}
	cursor := m.table.Cursor()
	m.table.SetRows(rows)
	if cursor >= 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

func upgradeRow(u *upgrade.Upgrade) table.Row {
	cost := fmt.Sprintf("%d", u.Cost())
	if !u.CanUpgrade() {
		cost = "MAX"
	}
	return table.Row{
		u.Name,
		fmt.Sprintf("%d/%d", u.Level(), u.MaxLevel),
		formatValue(u.Value()),
		cost,
	}
}

// formatValue prints whole values without decimals.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// selected returns the upgrade under the cursor.
func (m ShopModel) selected() (*upgrade.Upgrade, bool) {
	ups := m.sess.Upgrades().All()
	i := m.table.Cursor()
	if i < 0 || i >= len(ups) {
		return nil, false
	}
	return ups[i], true
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.leave(ShopQuit)

		case key.Matches(msg, m.keys.Back):
			return m.leave(ShopBack)

		case key.Matches(msg, m.keys.Play):
			return m.leave(ShopPlay)

		case key.Matches(msg, m.keys.Buy):
			m.buy()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// SetSize resizes the shop.
func (m *ShopModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table.SetHeight(core.Max(height-10, 4))
}

func (m ShopModel) leave(exit ShopExit) (tea.Model, tea.Cmd) {
	m.exit = exit
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// buy purchases the selected upgrade and reports the outcome.
func (m *ShopModel) buy() {
	u, ok := m.selected()
	if !ok {
		return
	}
	res := m.sess.Purchase(u.Name)
	m.statusOK = res == session.PurchaseOK
	if m.statusOK {
		m.status = fmt.Sprintf("%s upgraded to level %d", u.Name, u.Level())
	} else {
		m.status = fmt.Sprintf("%s: %s", u.Name, res)
	}
	m.refreshRows()
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.exit == ShopQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString(shopTitleStyle.Render(centerText("UPGRADE SHOP", m.width)))
	b.WriteString("\n\n")

	w := m.sess.Wallet()
	b.WriteString(shopWalletStyle.Render(centerText(fmt.Sprintf("Coins %d   XP %d", w.Coins, w.XP), m.width)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, shopBoxStyle.Render(m.table.View())))
	b.WriteString("\n")

	if m.status != "" {
		style := shopErrStyle
		if m.statusOK {
			style = shopOKStyle
		}
		b.WriteString(style.Render(centerText(m.status, m.width)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Exit returns how the shop was left, or ShopOpen.
func (m ShopModel) Exit() ShopExit {
	return m.exit
}

// RunShop runs the shop as its own program.
// Returns true when the player asked to start a run.
func RunShop(sess *session.Session, width, height int) (play bool, err error) {
	model := NewShopModel(sess, width, height)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ShopModel)
	if !ok {
		return false, nil
	}
	return m.Exit() == ShopPlay, nil
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
