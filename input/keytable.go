package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// KeyEntry describes the intent a key produces
type KeyEntry struct {
	IntentType IntentType
	Direction  core.Direction
	Difficulty engine.Difficulty
}

// KeyTable maps keys to intents per input mode
type KeyTable struct {
	// Special keys live in every mode
	SystemKeys map[tcell.Key]KeyEntry

	// Playing mode bindings
	PlayKeys  map[tcell.Key]KeyEntry
	PlayRunes map[rune]KeyEntry

	// Start screen bindings
	MenuKeys  map[tcell.Key]KeyEntry
	MenuRunes map[rune]KeyEntry

	// Game-over prompt bindings
	OverKeys  map[tcell.Key]KeyEntry
	OverRunes map[rune]KeyEntry
}

func dir(d core.Direction) KeyEntry {
	return KeyEntry{IntentType: IntentDirection, Direction: d}
}

func level(d engine.Difficulty) KeyEntry {
	return KeyEntry{IntentType: IntentSelectDifficulty, Difficulty: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	quit := KeyEntry{IntentType: IntentQuit}
	mute := KeyEntry{IntentType: IntentToggleMute}
	confirm := KeyEntry{IntentType: IntentConfirm}
	decline := KeyEntry{IntentType: IntentDecline}

	return &KeyTable{
		SystemKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
			tcell.KeyCtrlQ:  quit,
			tcell.KeyCtrlS:  mute,
		},

		PlayKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:    dir(core.DirUp),
			tcell.KeyDown:  dir(core.DirDown),
			tcell.KeyLeft:  dir(core.DirLeft),
			tcell.KeyRight: dir(core.DirRight),
		},
		PlayRunes: map[rune]KeyEntry{
			// vi
			'h': dir(core.DirLeft),
			'j': dir(core.DirDown),
			'k': dir(core.DirUp),
			'l': dir(core.DirRight),
			// WASD
			'w': dir(core.DirUp),
			'a': dir(core.DirLeft),
			's': dir(core.DirDown),
			'd': dir(core.DirRight),
			'm': mute,
		},

		MenuKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter: confirm,
		},
		MenuRunes: map[rune]KeyEntry{
			'1': level(engine.DifficultyEasy),
			'2': level(engine.DifficultyNormal),
			'3': level(engine.DifficultyHard),
			'm': mute,
			'q': quit,
		},

		OverKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter: confirm,
		},
		OverRunes: map[rune]KeyEntry{
			'y': confirm,
			'n': decline,
			'q': decline,
			'm': mute,
		},
	}
}
