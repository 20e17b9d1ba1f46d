package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ScorePopupDuration is how long a floating score label stays on screen
	ScorePopupDuration = 600 * time.Millisecond
)

// Terminal layout
const (
	// CellColumns is the number of terminal columns drawn per grid cell
	// Terminal glyphs are roughly twice as tall as wide
	CellColumns = 2

	// HUDRows is the number of rows reserved above the playfield border
	HUDRows = 2

	// StatusRows is the number of rows reserved below the playfield border
	StatusRows = 1
)

// Glyphs
const (
	SnakeHeadRune = '█'
	SnakeBodyRune = '▓'
	FoodRune      = '●'
	BonusRune     = '★'
)
