package render

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Layout maps grid cells to terminal coordinates
// The board is centered with the HUD directly above its border and the status row below
type Layout struct {
	Grid    engine.Grid
	Top     int // First HUD row
	Left    int // Border column
	OriginX int // Screen column of cell (0,0)
	OriginY int // Screen row of cell (0,0)
}

// BoardSize returns the bordered board size in terminal cells
func BoardSize(g engine.Grid) (cols, rows int) {
	return g.Width*constants.CellColumns + 2, g.Height + 2
}

// RequiredSize returns the smallest terminal that fits HUD, board and status row
func RequiredSize(g engine.Grid) (cols, rows int) {
	cols, rows = BoardSize(g)
	return cols, rows + constants.HUDRows + constants.StatusRows
}

// ComputeLayout centers the board, reporting false when the terminal is too small
func ComputeLayout(screenW, screenH int, g engine.Grid) (Layout, bool) {
	needW, needH := RequiredSize(g)
	if screenW < needW || screenH < needH {
		return Layout{Grid: g}, false
	}

	boardW, _ := BoardSize(g)
	left := (screenW - boardW) / 2
	top := (screenH - needH) / 2
	return Layout{
		Grid:    g,
		Top:     top,
		Left:    left,
		OriginX: left + 1,
		OriginY: top + constants.HUDRows + 1,
	}, true
}

// CellToScreen returns the first terminal column and the row of a grid cell
func (l Layout) CellToScreen(p core.Point) (x, y int) {
	return l.OriginX + p.X*constants.CellColumns, l.OriginY + p.Y
}

// BorderRect returns the outer corners of the board border
func (l Layout) BorderRect() (x0, y0, x1, y1 int) {
	w, h := BoardSize(l.Grid)
	return l.Left, l.OriginY - 1, l.Left + w - 1, l.OriginY + h - 2
}

// StatusRow returns the row below the board border
func (l Layout) StatusRow() int {
	_, _, _, y1 := l.BorderRect()
	return y1 + 1
}
