package engine

import (
	"log"

	"github.com/lixenwraith/vi-snake/events"
)

// EventLogger writes every game event to the process log
type EventLogger struct{}

func (EventLogger) EventTypes() []events.EventType {
	return events.AllTypes()
}

func (EventLogger) HandleEvent(snap Snapshot, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.SessionStartedPayload:
		log.Printf("[tick %d] %s difficulty=%s interval=%v", ev.Tick, ev.Type, p.Difficulty, p.Interval)
	case *events.FoodEatenPayload:
		log.Printf("[tick %d] %s at %s score=%d eaten=%d", ev.Tick, ev.Type, p.Pos, p.Score, p.FoodEaten)
	case *events.BonusSpawnedPayload:
		log.Printf("[tick %d] %s at %s lifetime=%d", ev.Tick, ev.Type, p.Pos, p.Lifetime)
	case *events.BonusEatenPayload:
		log.Printf("[tick %d] %s at %s score=%d", ev.Tick, ev.Type, p.Pos, p.Score)
	case *events.BonusExpiredPayload:
		log.Printf("[tick %d] %s at %s", ev.Tick, ev.Type, p.Pos)
	case *events.GameOverPayload:
		log.Printf("[tick %d] %s cause=%s at %s final=%d length=%d",
			ev.Tick, ev.Type, p.Cause, p.CrashPoint, p.FinalScore, len(snap.Snake))
	default:
		log.Printf("[tick %d] %s", ev.Tick, ev.Type)
	}
}
