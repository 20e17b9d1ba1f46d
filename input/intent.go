package input

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Ctrl+Q; q outside play
	IntentToggleMute // Ctrl+S, m
	IntentResize     // Terminal resize event

	// Play
	IntentDirection // Arrows, WASD, hjkl

	// Start screen
	IntentSelectDifficulty // 1, 2, 3

	// Start screen and game-over prompt
	IntentConfirm // Enter, y
	IntentDecline // n
)

// InputMode selects which bindings are live
type InputMode uint8

const (
	ModeMenu InputMode = iota
	ModePlaying
	ModeGameOver
)

func (m InputMode) String() string {
	switch m {
	case ModeMenu:
		return "MENU"
	case ModePlaying:
		return "PLAY"
	case ModeGameOver:
		return "OVER"
	default:
		return "?"
	}
}

// Intent is a parsed user action
type Intent struct {
	Type       IntentType
	Direction  core.Direction    // IntentDirection
	Difficulty engine.Difficulty // IntentSelectDifficulty
}
