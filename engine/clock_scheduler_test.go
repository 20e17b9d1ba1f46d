package engine

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/status"
)

const testTick = 5 * time.Millisecond

func newTestScheduler(t *testing.T, grid Grid, moveEvery time.Duration) (*ClockScheduler, *events.EventQueue, *status.Registry) {
	t.Helper()
	eng, err := NewEngine(Config{Grid: grid, Seed: 7})
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	queue := events.NewEventQueue()
	reg := status.NewRegistry()
	cs := NewClockScheduler(eng, queue, reg, SchedulerConfig{
		BonusUnit: testTick,
		Interval:  func(Difficulty) time.Duration { return moveEvery },
	})
	t.Cleanup(cs.Stop)
	return cs, queue, reg
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSchedulerDrivesMovement(t *testing.T) {
	cs, queue, reg := newTestScheduler(t, Grid{Width: 200, Height: 200}, testTick)

	res, err := cs.Start(DifficultyNormal)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !res.Has(events.EventSessionStarted) {
		t.Errorf("Start events = %v", res.Events)
	}

	waitFor(t, "three ticks", func() bool { return cs.Snapshot().Tick >= 3 })

	if got := reg.Ints.Get("engine.sessions").Load(); got != 1 {
		t.Errorf("engine.sessions = %d, want 1", got)
	}
	if got := reg.Strings.Get("engine.difficulty").Load(); got != "Normal" {
		t.Errorf("engine.difficulty = %q, want Normal", got)
	}
	if reg.Ints.Get("engine.ticks").Load() < 3 {
		t.Error("engine.ticks not counted")
	}

	evs := queue.Consume()
	if len(evs) == 0 || evs[0].Type != events.EventSessionStarted {
		t.Errorf("queue = %v, want SessionStarted first", evs)
	}

	cs.Stop()
	stopped := cs.Snapshot().Tick
	time.Sleep(10 * testTick)
	if got := cs.Snapshot().Tick; got != stopped {
		t.Errorf("ticks advanced after Stop: %d -> %d", stopped, got)
	}
}

func TestSchedulerGameOverCancelsTimers(t *testing.T) {
	// The spawn line fills a 4x1 board up to the right wall, so the first move crashes
	cs, queue, reg := newTestScheduler(t, Grid{Width: 4, Height: 1}, testTick)

	if _, err := cs.Start(DifficultyHard); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	waitFor(t, "game over", func() bool { return cs.Snapshot().State == StateGameOver })

	time.Sleep(10 * testTick)
	snap := cs.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("tick = %d, want exactly one move", snap.Tick)
	}
	if got := reg.Ints.Get("engine.game_over").Load(); got != 1 {
		t.Errorf("engine.game_over = %d, want 1", got)
	}
	if got := reg.Strings.Get("engine.state").Load(); got != "GameOver" {
		t.Errorf("engine.state = %q", got)
	}

	var sawGameOver bool
	for _, ev := range queue.Consume() {
		if ev.Type == events.EventGameOver {
			sawGameOver = true
		}
	}
	if !sawGameOver {
		t.Error("GameOver not published")
	}
}

func TestSchedulerRestartSupersedesSession(t *testing.T) {
	cs, _, _ := newTestScheduler(t, Grid{Width: 200, Height: 200}, testTick)

	if _, err := cs.Start(DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "ticks", func() bool { return cs.Snapshot().Tick >= 5 })

	res, err := cs.Start(DifficultyHard)
	if err != nil {
		t.Fatal(err)
	}
	if res.Snapshot.Tick != 0 || res.Snapshot.Difficulty != DifficultyHard {
		t.Errorf("restart snapshot = tick %d difficulty %s", res.Snapshot.Tick, res.Snapshot.Difficulty)
	}
	waitFor(t, "ticks after restart", func() bool { return cs.Snapshot().Tick >= 2 })
	if cs.Snapshot().State != StateRunning {
		t.Errorf("state = %s after restart", cs.Snapshot().State)
	}
}

func TestSchedulerInvalidStartArmsNothing(t *testing.T) {
	cs, queue, _ := newTestScheduler(t, Grid{Width: 30, Height: 20}, testTick)

	if _, err := cs.Start(Difficulty(0)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Start(0) error = %v, want ErrInvalidConfiguration", err)
	}
	time.Sleep(10 * testTick)
	if snap := cs.Snapshot(); snap.State != StateNotStarted || snap.Tick != 0 {
		t.Errorf("engine moved after rejected Start: %s tick %d", snap.State, snap.Tick)
	}
	if n := queue.Len(); n != 0 {
		t.Errorf("queue holds %d events", n)
	}
}

func TestSchedulerReportsPendingEvents(t *testing.T) {
	cs, queue, reg := newTestScheduler(t, Grid{Width: 30, Height: 20}, time.Hour)
	if _, err := cs.Start(DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	if got := reg.Ints.Get("events.pending").Load(); got != 1 {
		t.Errorf("events.pending = %d after Start, want 1", got)
	}

	queue.Consume()
	if _, err := cs.Start(DifficultyHard); err != nil {
		t.Fatal(err)
	}
	if got := reg.Ints.Get("events.pending").Load(); got != 1 {
		t.Errorf("events.pending = %d after drain and restart, want 1", got)
	}
}

func TestSchedulerBonusCountdown(t *testing.T) {
	// Movement slow enough that only the bonus timer fires
	cs, queue, reg := newTestScheduler(t, Grid{Width: 30, Height: 20}, time.Hour)
	if _, err := cs.Start(DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	cs.mu.Lock()
	cs.eng.bonus = &bonusFood{pos: core.Point{X: 10, Y: 10}, remaining: 3}
	cs.armBonusLocked()
	cs.mu.Unlock()

	waitFor(t, "bonus expiry", func() bool { return cs.Snapshot().Bonus == nil })

	if got := reg.Ints.Get("bonus.expired").Load(); got != 1 {
		t.Errorf("bonus.expired = %d, want 1", got)
	}
	if reg.Bools.Get("engine.bonus_active").Load() {
		t.Error("engine.bonus_active still set")
	}

	var expired int
	for _, ev := range queue.Consume() {
		if ev.Type == events.EventBonusExpired {
			expired++
		}
	}
	if expired != 1 {
		t.Errorf("BonusExpired published %d times, want 1", expired)
	}
}

func TestSchedulerStopDropsBonusCountdown(t *testing.T) {
	cs, _, _ := newTestScheduler(t, Grid{Width: 30, Height: 20}, time.Hour)
	if _, err := cs.Start(DifficultyEasy); err != nil {
		t.Fatal(err)
	}

	cs.mu.Lock()
	cs.eng.bonus = &bonusFood{pos: core.Point{X: 10, Y: 10}, remaining: 3}
	cs.armBonusLocked()
	cs.mu.Unlock()

	cs.Stop()
	time.Sleep(10 * testTick)
	if b := cs.Snapshot().Bonus; b == nil || b.Remaining != 3 {
		t.Errorf("bonus = %+v, countdown ran after Stop", b)
	}
}

func TestSchedulerSignalsUpdates(t *testing.T) {
	cs, _, _ := newTestScheduler(t, Grid{Width: 30, Height: 20}, time.Hour)
	if _, err := cs.Start(DifficultyEasy); err != nil {
		t.Fatal(err)
	}
	select {
	case <-cs.Updated():
	case <-time.After(time.Second):
		t.Fatal("no update signal after Start")
	}
}

func TestEventLoggerWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	eng, err := NewEngine(Config{Grid: Grid{Width: 30, Height: 20}, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	res, _ := eng.Start(DifficultyEasy)
	eng.SetDirection(core.DirUp)
	over := eng.Tick()

	queue := events.NewEventQueue()
	router := events.NewRouter[Snapshot](queue)
	router.Register(EventLogger{})
	queue.PushAll(res.Events)
	queue.PushAll(over.Events)

	if n := router.DispatchAll(over.Snapshot); n != 2 {
		t.Errorf("dispatched %d events, want 2", n)
	}
	out := buf.String()
	for _, want := range []string{"SessionStarted difficulty=Easy", "GameOver cause=wall"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
