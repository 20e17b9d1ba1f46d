package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted marks a fresh session
	// Trigger: Engine.Start
	// Consumer: Renderer (clear popups), logger | Payload: *SessionStartedPayload
	EventSessionStarted EventType = iota

	// EventFoodEaten signals regular food consumption
	// Trigger: Engine.Tick when the head lands on food
	// Consumer: AudioHandler (bell), Renderer (popup) | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventBonusSpawned signals bonus placement on a food-count multiple
	// Trigger: Engine.Tick after food consumption
	// Consumer: ClockScheduler (arms countdown) | Payload: *BonusSpawnedPayload
	EventBonusSpawned

	// EventBonusEaten signals bonus consumption
	// Trigger: Engine.Tick when the head lands on the bonus
	// Consumer: AudioHandler (coin), Renderer (popup), ClockScheduler (cancel countdown)
	// Payload: *BonusEatenPayload
	EventBonusEaten

	// EventBonusExpired signals bonus removal by countdown
	// Trigger: Engine.TickBonusCountdown at zero lifetime
	// Consumer: AudioHandler (whoosh) | Payload: *BonusExpiredPayload
	EventBonusExpired

	// EventGameOver signals the terminal session transition
	// Trigger: wall or self collision, food placement impossible
	// Consumer: ClockScheduler (cancel timers), AudioHandler (buzz), Renderer
	// Payload: *GameOverPayload
	EventGameOver

	eventTypeCount
)

var eventNames = [...]string{
	EventSessionStarted: "SessionStarted",
	EventFoodEaten:      "FoodEaten",
	EventBonusSpawned:   "BonusSpawned",
	EventBonusEaten:     "BonusEaten",
	EventBonusExpired:   "BonusExpired",
	EventGameOver:       "GameOver",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Engine tick the event was produced on
	Timestamp time.Time
}
