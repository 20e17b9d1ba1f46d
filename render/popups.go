package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// Popup is a floating score label anchored to a grid cell
type Popup struct {
	Pos     core.Point
	Text    string
	Expires time.Time
}

// ScorePopups collects score labels from game events
// Driven from the frame loop only; not safe for concurrent use
type ScorePopups struct {
	items []Popup
	ttl   time.Duration
	now   func() time.Time
}

// NewScorePopups creates an empty popup list
func NewScorePopups() *ScorePopups {
	return &ScorePopups{
		ttl: constants.ScorePopupDuration,
		now: time.Now,
	}
}

func (p *ScorePopups) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStarted,
		events.EventFoodEaten,
		events.EventBonusEaten,
	}
}

func (p *ScorePopups) HandleEvent(_ engine.Snapshot, ev events.GameEvent) {
	switch payload := ev.Payload.(type) {
	case *events.SessionStartedPayload:
		p.items = p.items[:0]
	case *events.FoodEatenPayload:
		p.add(payload.Pos, constants.FoodPoints)
	case *events.BonusEatenPayload:
		p.add(payload.Pos, constants.BonusPoints)
	}
}

func (p *ScorePopups) add(pos core.Point, points int) {
	p.items = append(p.items, Popup{
		Pos:     pos,
		Text:    fmt.Sprintf("+%d", points),
		Expires: p.now().Add(p.ttl),
	})
}

// Active drops expired labels and returns the rest
func (p *ScorePopups) Active(now time.Time) []Popup {
	live := p.items[:0]
	for _, item := range p.items {
		if now.Before(item.Expires) {
			live = append(live, item)
		}
	}
	p.items = live
	return live
}
