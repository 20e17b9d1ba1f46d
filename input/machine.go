package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents for the current mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
}

// NewMachine creates a machine on the start screen
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeMenu,
		keyTable: DefaultKeyTable(),
	}
}

// SetMode switches the live bindings, called by the driver on state changes
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the live binding set
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process translates one event, nil when the event means nothing in this mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(key tcell.Key, r rune) *Intent {
	if entry, ok := m.keyTable.SystemKeys[key]; ok {
		return entry.intent()
	}

	var keys map[tcell.Key]KeyEntry
	var runes map[rune]KeyEntry
	switch m.mode {
	case ModePlaying:
		keys, runes = m.keyTable.PlayKeys, m.keyTable.PlayRunes
	case ModeMenu:
		keys, runes = m.keyTable.MenuKeys, m.keyTable.MenuRunes
	case ModeGameOver:
		keys, runes = m.keyTable.OverKeys, m.keyTable.OverRunes
	}

	if key == tcell.KeyRune {
		if entry, ok := runes[unicode.ToLower(r)]; ok {
			return entry.intent()
		}
		return nil
	}
	if entry, ok := keys[key]; ok {
		return entry.intent()
	}
	return nil
}

func (e KeyEntry) intent() *Intent {
	return &Intent{
		Type:       e.IntentType,
		Direction:  e.Direction,
		Difficulty: e.Difficulty,
	}
}
