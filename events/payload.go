package events

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// GameOverCause identifies what ended a session
type GameOverCause int

const (
	CauseWall GameOverCause = iota
	CauseSelf
	CauseBoardFull
)

func (c GameOverCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	}
	return "unknown"
}

// SessionStartedPayload describes the new session
type SessionStartedPayload struct {
	Difficulty string
	Interval   time.Duration
}

// FoodEatenPayload contains the eaten cell and the running totals
type FoodEatenPayload struct {
	Pos       core.Point
	Score     int
	FoodEaten int
}

// BonusSpawnedPayload contains the bonus cell and its lifetime in countdown units
type BonusSpawnedPayload struct {
	Pos      core.Point
	Lifetime int
}

// BonusEatenPayload contains the eaten bonus cell
type BonusEatenPayload struct {
	Pos   core.Point
	Score int
}

// BonusExpiredPayload contains the cell the bonus vanished from
type BonusExpiredPayload struct {
	Pos core.Point
}

// GameOverPayload freezes the final score and the cause
type GameOverPayload struct {
	FinalScore int
	Cause      GameOverCause
	CrashPoint core.Point
}
