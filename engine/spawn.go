package engine

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// spawnPosition picks a free cell: uniform random draws first, then the four corners
// A cell is free when it is off the snake and differs from other
func (e *Engine) spawnPosition(other *core.Point) (core.Point, bool) {
	free := func(p core.Point) bool {
		if other != nil && *other == p {
			return false
		}
		return !containsPoint(e.snake, p)
	}

	for i := 0; i < constants.SpawnAttempts; i++ {
		p := core.Point{X: e.rng.Intn(e.grid.Width), Y: e.rng.Intn(e.grid.Height)}
		if free(p) {
			return p, true
		}
	}

	for _, p := range e.grid.Corners() {
		if free(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

// spawnFood places regular food, failing with ErrBoardFull when no cell is available
func (e *Engine) spawnFood() error {
	var other *core.Point
	if e.bonus != nil {
		other = &e.bonus.pos
	}
	p, ok := e.spawnPosition(other)
	if !ok {
		return ErrBoardFull
	}
	e.food = &p
	return nil
}

// spawnBonus places a bonus item with a full lifetime; no free cell means no bonus
func (e *Engine) spawnBonus() {
	p, ok := e.spawnPosition(e.food)
	if !ok {
		return
	}
	e.bonus = &bonusFood{pos: p, remaining: constants.BonusLifetime}
	e.emit(events.EventBonusSpawned, &events.BonusSpawnedPayload{
		Pos:      p,
		Lifetime: constants.BonusLifetime,
	})
}
