package audio

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// Player is the playback surface the event handler drives
type Player interface {
	Play(st SoundType)
}

// Handler turns game events into sound cues
type Handler struct {
	player Player
}

// NewHandler creates an event handler playing through p
func NewHandler(p Player) *Handler {
	return &Handler{player: p}
}

func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventBonusEaten,
		events.EventBonusExpired,
		events.EventGameOver,
	}
}

func (h *Handler) HandleEvent(_ engine.Snapshot, ev events.GameEvent) {
	switch ev.Type {
	case events.EventFoodEaten:
		h.player.Play(SoundBell)
	case events.EventBonusEaten:
		h.player.Play(SoundCoin)
	case events.EventBonusExpired:
		h.player.Play(SoundWhoosh)
	case events.EventGameOver:
		h.player.Play(SoundBuzz)
	}
}
