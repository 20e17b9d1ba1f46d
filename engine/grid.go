package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Grid is the logical playfield in cells
type Grid struct {
	Width  int
	Height int
}

// NewGridFromPixels derives the cell lattice of a pixel canvas
func NewGridFromPixels(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size %d", ErrInvalidConfiguration, cellSize)
	}
	g := Grid{Width: width / cellSize, Height: height / cellSize}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// DefaultGrid is the 30x20 lattice of the 600x400 canvas with 20 px cells
func DefaultGrid() Grid {
	return Grid{
		Width:  constants.DefaultFieldWidth / constants.DefaultCellSize,
		Height: constants.DefaultFieldHeight / constants.DefaultCellSize,
	}
}

// Validate checks that the spawn line fits
func (g Grid) Validate() error {
	if g.Width < constants.MinGridWidth || g.Height < constants.MinGridHeight {
		return fmt.Errorf("%w: grid %dx%d smaller than %dx%d",
			ErrInvalidConfiguration, g.Width, g.Height, constants.MinGridWidth, constants.MinGridHeight)
	}
	return nil
}

// Contains reports whether p is on the grid
func (g Grid) Contains(p core.Point) bool {
	return p.In(g.Width, g.Height)
}

// Cells returns the cell count
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Corners lists the fallback spawn cells: top-left, top-right, bottom-left, bottom-right
func (g Grid) Corners() [4]core.Point {
	return [4]core.Point{
		{X: 0, Y: 0},
		{X: g.Width - 1, Y: 0},
		{X: 0, Y: g.Height - 1},
		{X: g.Width - 1, Y: g.Height - 1},
	}
}
