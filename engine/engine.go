package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
)

// Config configures a simulation engine
type Config struct {
	Grid Grid  // Zero value selects DefaultGrid
	Seed int64 // 0 seeds from the wall clock
}

// bonusFood is a bonus item with its remaining lifetime in countdown units
type bonusFood struct {
	pos       core.Point
	remaining int
}

// Engine is the authoritative snake simulation
// Not safe for concurrent use; ClockScheduler serializes access
type Engine struct {
	grid Grid
	rng  *rand.Rand
	now  func() time.Time

	state      GameState
	difficulty Difficulty
	direction  core.Direction // Heading for the next tick
	heading    core.Direction // Heading of the last executed move
	snake      []core.Point   // Head at index 0
	food       *core.Point
	bonus      *bonusFood
	score      int
	foodEaten  int
	tick       uint64
	crashPoint *core.Point

	// Events produced by the call in progress
	pending []events.GameEvent
}

// NewEngine creates an engine in the NotStarted state
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Grid == (Grid{}) {
		cfg.Grid = DefaultGrid()
	}
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		grid:      cfg.Grid,
		rng:       rand.New(rand.NewSource(seed)),
		now:       time.Now,
		direction: core.DirRight,
		heading:   core.DirRight,
	}, nil
}

// Grid returns the playfield dimensions
func (e *Engine) Grid() Grid {
	return e.grid
}

// State returns the lifecycle phase
func (e *Engine) State() GameState {
	return e.state
}

// Difficulty returns the tier of the current or last session
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// HasBonus reports whether a bonus item is on the board
func (e *Engine) HasBonus() bool {
	return e.bonus != nil
}

// Start resets every session entity and begins a Running session
// Unrecognized difficulties fail with ErrInvalidConfiguration and leave state untouched
func (e *Engine) Start(d Difficulty) (Result, error) {
	if !d.Valid() {
		return Result{}, ErrInvalidConfiguration
	}

	e.pending = nil
	e.difficulty = d
	e.state = StateRunning
	e.direction = core.DirRight
	e.heading = core.DirRight
	e.score = 0
	e.foodEaten = 0
	e.tick = 0
	e.food = nil
	e.bonus = nil
	e.crashPoint = nil

	// Horizontal line on the top row, head at column InitialSnakeLength
	e.snake = make([]core.Point, 0, e.grid.Cells())
	for i := 0; i < constants.InitialSnakeLength; i++ {
		e.snake = append(e.snake, core.Point{X: constants.InitialSnakeLength - i, Y: 0})
	}

	e.emit(events.EventSessionStarted, &events.SessionStartedPayload{
		Difficulty: d.String(),
		Interval:   d.Interval(),
	})

	if err := e.spawnFood(); err != nil {
		e.gameOver(events.CauseBoardFull, e.snake[0])
	}

	return e.flush(), nil
}

// SetDirection queues a heading for the next tick
// Ignored outside a running session and for 180 degree reversals
// Reversal is judged against the last executed move so several inputs between ticks cannot fold the snake back
func (e *Engine) SetDirection(d core.Direction) {
	if e.state != StateRunning || !d.Valid() {
		return
	}
	if d == e.heading.Opposite() {
		return
	}
	e.direction = d
}

// Tick advances the snake one cell and resolves collisions, food and bonus
func (e *Engine) Tick() Result {
	e.pending = nil
	if e.state != StateRunning {
		return e.flush()
	}
	e.tick++
	e.heading = e.direction

	head := e.snake[0]
	newHead := head.Add(e.direction.Delta())

	if !e.grid.Contains(newHead) {
		e.gameOver(events.CauseWall, newHead)
		return e.flush()
	}
	// The tail cell is vacated this step unless food is eaten, and food never sits on the snake
	if containsPoint(e.snake[:len(e.snake)-1], newHead) {
		e.gameOver(events.CauseSelf, newHead)
		return e.flush()
	}

	e.snake = append(e.snake, core.Point{})
	copy(e.snake[1:], e.snake[:len(e.snake)-1])
	e.snake[0] = newHead

	if e.food != nil && *e.food == newHead {
		e.score += constants.FoodPoints
		e.foodEaten++
		e.food = nil
		e.emit(events.EventFoodEaten, &events.FoodEatenPayload{
			Pos:       newHead,
			Score:     e.score,
			FoodEaten: e.foodEaten,
		})

		if err := e.spawnFood(); err != nil {
			e.gameOver(events.CauseBoardFull, newHead)
			return e.flush()
		}

		if e.foodEaten%constants.BonusEveryNthFood == 0 {
			e.bonus = nil
			e.spawnBonus()
		}
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	if e.bonus != nil && e.bonus.pos == newHead {
		e.score += constants.BonusPoints
		e.bonus = nil
		e.emit(events.EventBonusEaten, &events.BonusEatenPayload{
			Pos:   newHead,
			Score: e.score,
		})
	}

	if e.food == nil {
		if err := e.spawnFood(); err != nil {
			e.gameOver(events.CauseBoardFull, newHead)
		}
	}

	return e.flush()
}

// TickBonusCountdown consumes one unit of bonus lifetime, removing the bonus at zero
func (e *Engine) TickBonusCountdown() Result {
	e.pending = nil
	if e.state != StateRunning || e.bonus == nil {
		return e.flush()
	}

	e.bonus.remaining--
	if e.bonus.remaining <= 0 {
		pos := e.bonus.pos
		e.bonus = nil
		e.emit(events.EventBonusExpired, &events.BonusExpiredPayload{Pos: pos})
	}
	return e.flush()
}

// Snapshot captures the current state without mutating it
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Grid:       e.grid,
		State:      e.state,
		Difficulty: e.difficulty,
		Direction:  e.direction,
		Snake:      append([]core.Point(nil), e.snake...),
		Score:      e.score,
		FoodEaten:  e.foodEaten,
		Tick:       e.tick,
	}
	if e.food != nil {
		f := *e.food
		s.Food = &f
	}
	if e.bonus != nil {
		s.Bonus = &BonusView{Pos: e.bonus.pos, Remaining: e.bonus.remaining}
	}
	if e.crashPoint != nil {
		c := *e.crashPoint
		s.CrashPoint = &c
	}
	return s
}

func (e *Engine) gameOver(cause events.GameOverCause, at core.Point) {
	e.state = StateGameOver
	e.crashPoint = &at
	e.emit(events.EventGameOver, &events.GameOverPayload{
		FinalScore: e.score,
		Cause:      cause,
		CrashPoint: at,
	})
}

func (e *Engine) emit(t events.EventType, payload any) {
	e.pending = append(e.pending, events.GameEvent{
		Type:      t,
		Payload:   payload,
		Tick:      e.tick,
		Timestamp: e.now(),
	})
}

func (e *Engine) flush() Result {
	r := Result{Snapshot: e.Snapshot(), Events: e.pending}
	e.pending = nil
	return r
}

func containsPoint(points []core.Point, p core.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
