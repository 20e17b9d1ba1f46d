package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/status"
)

// Scene selects what the frame shows
type Scene uint8

const (
	SceneMenu Scene = iota
	ScenePlaying
	SceneGameOver
)

// Frame is everything one draw needs
type Frame struct {
	Scene    Scene
	Snapshot engine.Snapshot
	Selected engine.Difficulty // Highlighted start screen entry
	Muted    bool
	Now      time.Time
}

// Menu and overlay text
const (
	TextWelcome     = "Welcome to Snake Game!"
	TextSelectLevel = "Select a difficulty level to start"
	TextControls    = "Use arrow keys to control the snake"
	TextGameOver    = "Game Over!"
	TextPlayAgain   = "Play again? (y/n)"
)

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen    tcell.Screen
	theme     Theme
	popups    *ScorePopups
	statusReg *status.Registry
	debug     bool
}

// NewRenderer creates a renderer; popups and reg may be nil
func NewRenderer(screen tcell.Screen, theme Theme, popups *ScorePopups, reg *status.Registry, debug bool) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     theme,
		popups:    popups,
		statusReg: reg,
		debug:     debug,
	}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.Fill(' ', r.theme.Base)
	w, h := r.screen.Size()

	switch f.Scene {
	case SceneMenu:
		r.drawMenu(w, h, f)
	default:
		layout, ok := ComputeLayout(w, h, f.Snapshot.Grid)
		if !ok {
			r.drawTooSmall(w, h, f.Snapshot.Grid)
			break
		}
		r.drawBoard(layout, f)
		if f.Scene == SceneGameOver {
			r.drawGameOver(layout, f.Snapshot)
		}
		r.drawStatus(layout, w, f)
	}

	r.screen.Show()
}

type textLine struct {
	text  string
	style tcell.Style
}

func (r *Renderer) drawMenu(w, h int, f Frame) {
	lines := []textLine{
		{TextWelcome, r.theme.Title},
		{"", r.theme.Text},
		{TextSelectLevel, r.theme.Text},
		{"", r.theme.Text},
	}
	for i, d := range engine.Difficulties() {
		line := textLine{fmt.Sprintf("  %d  %-6s", i+1, d), r.theme.Text}
		if d == f.Selected {
			line = textLine{fmt.Sprintf("> %d  %-6s", i+1, d), r.theme.Head}
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		textLine{"", r.theme.Text},
		textLine{TextControls, r.theme.Hint},
		textLine{"Enter: start   m: mute   q: quit", r.theme.Hint},
	)

	top := (h - len(lines)) / 2
	for i, line := range lines {
		r.centerText(top+i, 0, w, line.text, line.style)
	}
}

func (r *Renderer) drawTooSmall(w, h int, g engine.Grid) {
	needW, needH := RequiredSize(g)
	r.centerText(h/2, 0, w, fmt.Sprintf("Terminal too small: need %dx%d", needW, needH), r.theme.Text)
}

func (r *Renderer) drawBoard(l Layout, f Frame) {
	snap := f.Snapshot
	x0, y0, x1, y1 := l.BorderRect()

	// HUD
	r.drawText(x0, l.Top, "Score: "+strconv.Itoa(snap.Score), r.theme.Text)
	levelText := "Level: " + snap.Difficulty.String()
	r.drawText(x1+1-runewidth.StringWidth(levelText), l.Top, levelText, r.theme.Text)
	if f.Muted {
		r.centerText(l.Top, x0, x1-x0+1, "muted", r.theme.Hint)
	}

	r.drawBorder(x0, y0, x1, y1)

	if snap.Food != nil {
		x, y := l.CellToScreen(*snap.Food)
		r.drawCell(x, y, constants.FoodRune, r.theme.Food)
	}

	if snap.Bonus != nil {
		x, y := l.CellToScreen(snap.Bonus.Pos)
		r.drawCell(x, y, constants.BonusRune, r.theme.Bonus)

		// Remaining countdown sits above the bonus, or below it on the top row
		ty := y - 1
		if snap.Bonus.Pos.Y == 0 {
			ty = y + 1
		}
		if ty < y1 {
			r.drawText(x, ty, strconv.Itoa(snap.Bonus.Remaining), r.theme.BonusTime)
		}
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		p := snap.Snake[i]
		if !snap.Grid.Contains(p) {
			continue
		}
		x, y := l.CellToScreen(p)
		if i == 0 {
			style := r.theme.Head
			if snap.State == engine.StateGameOver {
				style = r.theme.Crash
			}
			r.fillCell(x, y, constants.SnakeHeadRune, style)
		} else {
			r.fillCell(x, y, constants.SnakeBodyRune, r.theme.Body)
		}
	}

	if snap.CrashPoint != nil && snap.Grid.Contains(*snap.CrashPoint) {
		x, y := l.CellToScreen(*snap.CrashPoint)
		r.drawCell(x, y, 'X', r.theme.Crash)
	}

	if r.popups != nil {
		for _, p := range r.popups.Active(f.Now) {
			x, y := l.CellToScreen(p.Pos)
			if p.Pos.Y > 0 {
				y--
			}
			r.drawText(x, y, p.Text, r.theme.Popup)
		}
	}
}

func (r *Renderer) drawBorder(x0, y0, x1, y1 int) {
	s := r.theme.Border
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, s)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, s)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, s)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, s)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, s)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, s)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, s)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, s)
}

func (r *Renderer) drawGameOver(l Layout, snap engine.Snapshot) {
	x0, y0, x1, y1 := l.BorderRect()
	lines := []string{
		TextGameOver,
		fmt.Sprintf("Final Score: %d", snap.Score),
		TextPlayAgain,
	}

	panelW := 0
	for _, s := range lines {
		panelW = max(panelW, runewidth.StringWidth(s))
	}
	panelW += 4
	panelH := len(lines) + 2

	boardW := x1 - x0 + 1
	px := x0 + (boardW-panelW)/2
	py := y0 + (y1-y0+1-panelH)/2
	for y := py; y < py+panelH; y++ {
		for x := px; x < px+panelW; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.theme.Overlay)
		}
	}

	r.centerText(py+1, px, panelW, lines[0], r.theme.Alert)
	for i, s := range lines[1:] {
		r.centerText(py+2+i, px, panelW, s, r.theme.Overlay)
	}
}

func (r *Renderer) drawStatus(l Layout, w int, f Frame) {
	y := l.StatusRow()
	if !r.debug || r.statusReg == nil {
		hint := "arrows/wasd/hjkl: move   m: mute   esc: quit"
		if f.Scene == SceneGameOver {
			hint = "y: play again   n: quit"
		}
		r.centerText(y, 0, w, hint, r.theme.Hint)
		return
	}

	line := " " + strings.Join(r.statusReg.Pairs(), " ")
	line = runewidth.Truncate(line, w, "…")
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.theme.Status)
	}
	r.drawText(0, y, line, r.theme.Status)
}

// drawCell puts a glyph in the first column of a grid cell and blanks the second
func (r *Renderer) drawCell(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
	for i := 1; i < constants.CellColumns; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// fillCell repeats a glyph across every column of a grid cell
func (r *Renderer) fillCell(x, y int, ch rune, style tcell.Style) {
	for i := 0; i < constants.CellColumns; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawText writes s from column x, returning the columns used
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col - x
}

// centerText writes s centered within [left, left+width)
func (r *Renderer) centerText(y, left, width int, s string, style tcell.Style) {
	x := left + (width-runewidth.StringWidth(s))/2
	r.drawText(max(x, left), y, s, style)
}
