package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knight-run/internal/core"
	"github.com/vovakirdan/knight-run/internal/session"
	"github.com/vovakirdan/knight-run/internal/sprite"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// ScreenSink draws world-space sprites into a Screen, scaling the camera
// view onto the play field below the HUD.
type ScreenSink struct {
	screen  *core.Screen
	sprites *sprite.Catalog
	view    core.Rect
	top     int
	rows    int
	cols    int
}

var _ session.Sink = (*ScreenSink)(nil)

// NewScreenSink creates a sink for the given camera view.
func NewScreenSink(screen *core.Screen, sprites *sprite.Catalog, view core.Rect) *ScreenSink {
	return &ScreenSink{
		screen:  screen,
		sprites: sprites,
		view:    view,
		top:     hudRows,
		rows:    core.Max(screen.Height()-hudRows, 1),
		cols:    core.Max(screen.Width(), 1),
	}
}

// Draw fills the cells covered by the sprite with its glyph.
// Every sprite covers at least one cell.
func (s *ScreenSink) Draw(id sprite.ID, x, y float64) {
	info, ok := s.sprites.Lookup(id)
	if !ok {
		return
	}

	c0, c1 := s.colSpan(x, x+info.Width)
	c1 = core.Min(c1, s.cols)
	r0, r1 := s.rowSpan(y, y+info.Height)
	for row := r0; row <= r1; row++ {
		if row < s.top {
			continue
		}
		for col := c0; col < c1; col++ {
			s.screen.SetColored(col, row, info.Glyph, info.Color)
		}
	}
}

// colSpan maps [x0, x1) to a half-open column range.
func (s *ScreenSink) colSpan(x0, x1 float64) (int, int) {
	sx := float64(s.cols) / s.view.W
	c0 := int(math.Floor((x0 - s.view.X) * sx))
	c1 := int(math.Ceil((x1 - s.view.X) * sx))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// rowSpan maps [y0, y1) to an inclusive row range. World y grows upwards.
func (s *ScreenSink) rowSpan(y0, y1 float64) (int, int) {
	bottom := s.Row(y0)
	top := s.top + s.rows - int(math.Ceil((y1-s.view.Y)*float64(s.rows)/s.view.H))
	if top > bottom {
		top = bottom
	}
	return top, bottom
}

// Row returns the screen row showing world height y.
func (s *ScreenSink) Row(y float64) int {
	sy := float64(s.rows) / s.view.H
	return s.top + s.rows - 1 - int(math.Floor((y-s.view.Y)*sy))
}

// DrawGround fills the play field below groundY.
func (s *ScreenSink) DrawGround(groundY float64) {
	first := s.Row(groundY) + 1
	for row := core.Max(first, s.top); row < s.top+s.rows; row++ {
		fill := '░'
		if row == first {
			fill = '═'
		}
		s.screen.DrawHLine(0, row, s.cols, fill, core.ColorGray)
	}
}

// RenderSession draws the whole frame: ground, entities and HUD.
func RenderSession(screen *core.Screen, sess *session.Session) {
	screen.Clear()
	sink := NewScreenSink(screen, sess.Sprites(), sess.View())
	sink.DrawGround(sess.Player().GroundY())
	sess.Render(sink)
	drawHUD(screen, sess)

	st := sess.State()
	switch {
	case st.GameOver:
		run := sess.Run()
		drawCenteredMessage(screen, "GAME OVER",
			fmt.Sprintf("Distance %d  Coins +%d  XP +%d", run.Distance, run.Coins, run.XP),
			"R restart  S shop  Q quit")
	case st.Paused:
		drawCenteredMessage(screen, "PAUSED", "P resume  S shop  Q quit")
	}
}

// drawHUD writes the status line.
func drawHUD(screen *core.Screen, sess *session.Session) {
	st := sess.State()
	filled := core.Clamp(st.Health, 0, core.Max(st.MaxHealth, 0))
	hearts := strings.Repeat("♥", filled) + strings.Repeat("·", core.Max(st.MaxHealth-filled, 0))
	screen.DrawTextColored(1, 0, hearts, core.ColorRed)

	status := fmt.Sprintf(" Dist %d  $%d  XP %d  Kills %d", st.Distance, st.Coins, st.XP, st.Kills)
	screen.DrawText(2+len([]rune(hearts)), 0, status)

	var effects []string
	for _, e := range sess.PowerUps() {
		effects = append(effects, fmt.Sprintf("%c %s %.0fs", e.Kind.Glyph(), e.Kind.Label(), math.Ceil(e.Remaining())))
	}
	if len(effects) > 0 {
		text := strings.Join(effects, "  ")
		screen.DrawTextColored(screen.Width()-len([]rune(text))-1, 0, text, core.ColorBrightYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(screen *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (screen.Width() - boxW) / 2
	boxY := (screen.Height() - boxH) / 2

	screen.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	screen.DrawBox(boxX, boxY, boxW, boxH)

	screen.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		screen.DrawTextCentered(boxY+3+i, l)
	}
}
