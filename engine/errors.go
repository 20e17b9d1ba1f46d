package engine

import "errors"

// Sentinel errors
var (
	// ErrInvalidConfiguration rejects unknown difficulties and unusable grids
	// The engine keeps its prior state when returned
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrBoardFull reports that no free cell exists for regular food
	// Never returned to callers, it becomes a GameOver transition
	ErrBoardFull = errors.New("board full")
)
