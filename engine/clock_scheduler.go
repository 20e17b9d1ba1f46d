package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

// SchedulerConfig sets the timer periods
// Zero fields fall back to the difficulty table and the one second bonus unit
type SchedulerConfig struct {
	BonusUnit time.Duration
	Interval  func(Difficulty) time.Duration
}

// ClockScheduler owns the movement and bonus timers of one engine
// Every engine mutation goes through mu; timer callbacks carry a generation
// token and drop themselves once a start, game over or stop has superseded them
type ClockScheduler struct {
	mu  sync.Mutex
	eng *Engine
	cfg SchedulerConfig

	moveTimer  *time.Timer
	bonusTimer *time.Timer
	moveGen    uint64
	bonusGen   uint64
	interval   time.Duration

	queue   *events.EventQueue
	updated chan struct{} // Signaled after every state change, capacity 1

	// Cached metric pointers
	statusReg       *status.Registry
	statTicks       *atomic.Int64
	statSessions    *atomic.Int64
	statFood        *atomic.Int64
	statBonusSpawn  *atomic.Int64
	statBonusEaten  *atomic.Int64
	statBonusExpire *atomic.Int64
	statGameOver    *atomic.Int64
	statState       *status.AtomicString
	statDifficulty  *status.AtomicString
	statBonusActive *atomic.Bool
	statFoodRate    *status.AtomicFloat
	statQueued      *atomic.Int64
}

// NewClockScheduler wraps eng; events go to queue and counters to reg
func NewClockScheduler(eng *Engine, queue *events.EventQueue, reg *status.Registry, cfg SchedulerConfig) *ClockScheduler {
	if cfg.BonusUnit <= 0 {
		cfg.BonusUnit = constants.BonusCountdownUnit
	}
	if cfg.Interval == nil {
		cfg.Interval = Difficulty.Interval
	}

	cs := &ClockScheduler{
		eng:             eng,
		cfg:             cfg,
		queue:           queue,
		updated:         make(chan struct{}, 1),
		statusReg:       reg,
		statTicks:       reg.Ints.Get("engine.ticks"),
		statSessions:    reg.Ints.Get("engine.sessions"),
		statFood:        reg.Ints.Get("engine.food_eaten"),
		statBonusSpawn:  reg.Ints.Get("bonus.spawned"),
		statBonusEaten:  reg.Ints.Get("bonus.eaten"),
		statBonusExpire: reg.Ints.Get("bonus.expired"),
		statGameOver:    reg.Ints.Get("engine.game_over"),
		statState:       reg.Strings.Get("engine.state"),
		statDifficulty:  reg.Strings.Get("engine.difficulty"),
		statBonusActive: reg.Bools.Get("engine.bonus_active"),
		statFoodRate:    reg.Floats.Get("session.food_rate"),
		statQueued:      reg.Ints.Get("events.pending"),
	}
	cs.statState.Store(eng.State().String())
	return cs
}

// Updated signals after every call that changed engine state
func (cs *ClockScheduler) Updated() <-chan struct{} {
	return cs.updated
}

// Start begins a fresh session, canceling both schedules before re-arming movement
// An invalid difficulty leaves the engine and the timers untouched
func (cs *ClockScheduler) Start(d Difficulty) (Result, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	res, err := cs.eng.Start(d)
	if err != nil {
		return Result{}, err
	}

	cs.cancelLocked()
	cs.statSessions.Add(1)
	cs.statDifficulty.Store(d.String())
	cs.publishLocked(res)

	if res.Snapshot.State == StateRunning {
		cs.interval = cs.cfg.Interval(d)
		cs.armMoveLocked()
	}
	return res, nil
}

// SetDirection forwards a heading change to the engine between ticks
func (cs *ClockScheduler) SetDirection(d core.Direction) {
	cs.mu.Lock()
	cs.eng.SetDirection(d)
	cs.mu.Unlock()
}

// Stop cancels both schedules; a later Start may resume play
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	cs.cancelLocked()
	cs.mu.Unlock()
}

// Snapshot returns the current engine state
func (cs *ClockScheduler) Snapshot() Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.eng.Snapshot()
}

// cancelLocked stops both timers and invalidates callbacks already in flight
func (cs *ClockScheduler) cancelLocked() {
	cs.moveGen++
	cs.bonusGen++
	if cs.moveTimer != nil {
		cs.moveTimer.Stop()
		cs.moveTimer = nil
	}
	if cs.bonusTimer != nil {
		cs.bonusTimer.Stop()
		cs.bonusTimer = nil
	}
}

func (cs *ClockScheduler) armMoveLocked() {
	gen := cs.moveGen
	cs.moveTimer = time.AfterFunc(cs.interval, func() { cs.onMove(gen) })
}

// armBonusLocked starts a countdown schedule, superseding any previous one
func (cs *ClockScheduler) armBonusLocked() {
	cs.bonusGen++
	if cs.bonusTimer != nil {
		cs.bonusTimer.Stop()
	}
	cs.rearmBonusLocked()
}

func (cs *ClockScheduler) rearmBonusLocked() {
	gen := cs.bonusGen
	cs.bonusTimer = time.AfterFunc(cs.cfg.BonusUnit, func() { cs.onBonus(gen) })
}

func (cs *ClockScheduler) cancelBonusLocked() {
	cs.bonusGen++
	if cs.bonusTimer != nil {
		cs.bonusTimer.Stop()
		cs.bonusTimer = nil
	}
}

// onMove runs on the timer goroutine
func (cs *ClockScheduler) onMove(gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.moveGen {
		return
	}

	res := cs.eng.Tick()
	cs.statTicks.Add(1)
	cs.publishLocked(res)

	if res.Snapshot.State != StateRunning {
		cs.cancelLocked()
		return
	}

	switch {
	case res.Has(events.EventBonusSpawned):
		cs.armBonusLocked()
	case !cs.eng.HasBonus():
		cs.cancelBonusLocked()
	}
	cs.armMoveLocked()
}

// onBonus runs on the timer goroutine
func (cs *ClockScheduler) onBonus(gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.bonusGen {
		return
	}

	res := cs.eng.TickBonusCountdown()
	cs.publishLocked(res)

	if cs.eng.HasBonus() {
		cs.rearmBonusLocked()
	} else {
		cs.bonusTimer = nil
	}
}

// publishLocked forwards events, refreshes metrics and wakes the renderer
func (cs *ClockScheduler) publishLocked(res Result) {
	if cs.queue != nil {
		cs.queue.PushAll(res.Events)
		cs.statQueued.Store(int64(cs.queue.Len()))
	}

	for _, ev := range res.Events {
		switch ev.Type {
		case events.EventFoodEaten:
			cs.statFood.Add(1)
		case events.EventBonusSpawned:
			cs.statBonusSpawn.Add(1)
		case events.EventBonusEaten:
			cs.statBonusEaten.Add(1)
		case events.EventBonusExpired:
			cs.statBonusExpire.Add(1)
		case events.EventGameOver:
			cs.statGameOver.Add(1)
		}
	}

	snap := res.Snapshot
	cs.statState.Store(snap.State.String())
	cs.statBonusActive.Store(snap.Bonus != nil)
	if snap.Tick > 0 {
		cs.statFoodRate.Set(float64(snap.FoodEaten) / float64(snap.Tick))
	} else {
		cs.statFoodRate.Set(0)
	}

	select {
	case cs.updated <- struct{}{}:
	default:
	}
}
