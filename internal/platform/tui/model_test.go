package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/session"
	"github.com/vovakirdan/knight-run/internal/upgrade"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	env, err := NewEnv(config.DefaultGameConfig(), nil, nil)
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}
	sess, err := env.NewSession("", testRuntime())
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return NewModel(sess, testRuntime(), true)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t)
	for range 30 {
		m, _ = send(t, m, TickMsg{})
	}
	if m.sess.World().Left <= 0 {
		t.Error("ticks should scroll the world")
	}
}

func TestModelQuitOnlyWhenHalted(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, keyMsg("q"))
	if cmd != nil || m.quitting {
		t.Fatal("q should be ignored during a run")
	}

	m, _ = send(t, m, keyMsg("p"))
	m, _ = send(t, m, TickMsg{})
	if !m.sess.State().Paused {
		t.Fatal("p should pause the run")
	}

	m, cmd = send(t, m, keyMsg("q"))
	if cmd == nil || !m.quitting {
		t.Error("q should quit while paused")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Error("ctrl+c should always quit")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m.sess.Player().Health = 0
	m, _ = send(t, m, TickMsg{})
	if !m.sess.State().GameOver {
		t.Fatal("run should end when the knight dies")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over box should be shown")
	}

	m, _ = send(t, m, keyMsg("r"))
	if st := m.sess.State(); st.GameOver || st.Health <= 0 {
		t.Errorf("restart should start a fresh run, got %+v", st)
	}
}

func TestModelShopRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.sess.Player().Health = 0
	m, _ = send(t, m, TickMsg{})

	m, _ = send(t, m, keyMsg("s"))
	if m.mode != modeShop {
		t.Fatal("s should open the shop after game over")
	}
	if !strings.Contains(m.View(), "UPGRADE SHOP") {
		t.Error("shop view expected")
	}

	left := m.sess.World().Left
	m, _ = send(t, m, TickMsg{})
	if m.sess.World().Left != left {
		t.Error("the run should not advance while shopping")
	}

	m, _ = send(t, m, keyMsg("r"))
	if m.mode != modePlay || m.sess.State().GameOver {
		t.Error("play should leave the shop and restart")
	}
}

func TestShopPurchase(t *testing.T) {
	prefs := core.NewMemPrefs()
	prefs.PutInt(session.KeyCoins, 10000)
	sess, err := session.New(session.Deps{Config: config.DefaultGameConfig(), Runtime: testRuntime(), Prefs: prefs})
	if err != nil {
		t.Fatal(err)
	}

	shop := NewShopModel(sess, 80, 24)
	first := sess.Upgrades().All()[0]
	cost := first.Cost()

	next, _ := shop.Update(keyMsg("enter"))
	shop = next.(ShopModel)

	if first.Level() != 2 {
		t.Errorf("level = %d, want 2", first.Level())
	}
	if got := sess.Wallet().Coins; got != 10000-cost {
		t.Errorf("coins = %d, want %d", got, 10000-cost)
	}
	if !shop.statusOK || !strings.Contains(shop.View(), "upgraded to level 2") {
		t.Errorf("status = %q", shop.status)
	}
	if shop.Exit() != ShopOpen {
		t.Error("buying should keep the shop open")
	}
}

func TestShopRejectsWithoutCoins(t *testing.T) {
	sess, err := session.New(session.Deps{Config: config.DefaultGameConfig(), Runtime: testRuntime()})
	if err != nil {
		t.Fatal(err)
	}
	shop := NewShopModel(sess, 80, 24)

	next, _ := shop.Update(keyMsg("enter"))
	shop = next.(ShopModel)

	if shop.statusOK || !strings.Contains(shop.status, "not enough coins") {
		t.Errorf("status = %q", shop.status)
	}
	if up, _ := sess.Upgrades().Get(upgrade.JumpCount); up.Level() != 1 {
		t.Error("rejected purchase should not level up")
	}
}

func TestShopExits(t *testing.T) {
	sess, err := session.New(session.Deps{Config: config.DefaultGameConfig(), Runtime: testRuntime()})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want ShopExit
	}{
		{"r", ShopPlay},
		{"esc", ShopBack},
		{"q", ShopQuit},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			next, _ := NewShopModel(sess, 80, 24).Update(keyMsg(tt.key))
			if got := next.(ShopModel).Exit(); got != tt.want {
				t.Errorf("Exit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := formatValue(2); got != "2" {
		t.Errorf("formatValue(2) = %q", got)
	}
	if got := formatValue(1.5); got != "1.50" {
		t.Errorf("formatValue(1.5) = %q", got)
	}
	if got := formatDuration(125_000); got != "2:05" {
		t.Errorf("formatDuration = %q", got)
	}
}
