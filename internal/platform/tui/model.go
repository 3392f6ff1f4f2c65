package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/session"
)

type mode int

const (
	modePlay mode = iota
	modeShop
)

// Model is the Bubble Tea model hosting one session: the run itself and
// the upgrade shop reachable from the pause and game over screens.
type Model struct {
	sess      *session.Session
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool // Restarts replay the same seed
	input     *HeldInput
	keys      *KeyMapper
	shop      ShopModel
	mode      mode
	quitting  bool
}

// NewModel creates a model for sess.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, fixedSeed bool) Model {
	return Model{
		sess:      sess,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		fixedSeed: fixedSeed,
		input:     NewHeldInput(),
		keys:      NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.mode == modeShop {
			m.shop.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case TickMsg:
		if m.mode == modePlay {
			m.sess.Step(m.input.Frame())
			m.input.Advance()
		}
		return m, tickCmd(m.config.TickRate)

	case tea.KeyMsg:
		if m.mode == modeShop {
			return m.updateShop(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input during a run.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	st := m.sess.State()
	halted := st.Paused || st.GameOver

	switch {
	case action == core.ActionQuit:
		if halted {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case halted && msg.String() == "s":
		m.openShop()
		return m, nil

	case st.GameOver && action == core.ActionRestart:
		m.restart()
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// updateShop forwards keys to the shop and handles leaving it.
func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.shop.Update(msg)
	if shop, ok := next.(ShopModel); ok {
		m.shop = shop
	}

	switch m.shop.Exit() {
	case ShopQuit:
		m.quitting = true
		return m, tea.Quit
	case ShopPlay:
		m.mode = modePlay
		switch st := m.sess.State(); {
		case st.GameOver:
			m.restart()
		case st.Paused:
			m.input.Press(core.ActionPause)
		}
	case ShopBack:
		m.mode = modePlay
	}
	return m, cmd
}

func (m *Model) openShop() {
	m.shop = NewShopModel(m.sess, m.config.ScreenW, m.config.ScreenH)
	m.mode = modeShop
	m.input.Release()
}

// restart starts a new run, with a fresh seed unless one was fixed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.sess.Reseed(time.Now().UnixNano())
	}
	m.sess.Reset()
	m.input.Release()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeShop {
		return m.shop.View()
	}

	RenderSession(m.screen, m.sess)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for sess.
func Run(sess *session.Session, cfg core.RuntimeConfig, fixedSeed bool) error {
	model := NewModel(sess, cfg, fixedSeed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
