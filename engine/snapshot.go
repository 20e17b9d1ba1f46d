package engine

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// BonusView is the renderer-facing bonus state
type BonusView struct {
	Pos       core.Point
	Remaining int // Countdown units left
}

// Snapshot is an immutable copy of engine state for the renderer
// Slices and pointers are freshly allocated on every capture
type Snapshot struct {
	Grid       Grid
	State      GameState
	Difficulty Difficulty
	Direction  core.Direction
	Snake      []core.Point // Head first
	Food       *core.Point
	Bonus      *BonusView
	Score      int
	FoodEaten  int
	Tick       uint64
	CrashPoint *core.Point // Set once the session is over by collision
}

// Head returns the snake head, false before the first session
func (s Snapshot) Head() (core.Point, bool) {
	if len(s.Snake) == 0 {
		return core.Point{}, false
	}
	return s.Snake[0], true
}

// Result is the outcome of one engine call: the post-call snapshot and the events it produced
type Result struct {
	Snapshot Snapshot
	Events   []events.GameEvent
}

// Has reports whether an event of type t was produced
func (r Result) Has(t events.EventType) bool {
	for _, ev := range r.Events {
		if ev.Type == t {
			return true
		}
	}
	return false
}
