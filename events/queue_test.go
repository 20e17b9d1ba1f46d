package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventSessionStarted, Tick: 0})
	q.Push(GameEvent{Type: EventFoodEaten, Tick: 1})
	q.Push(GameEvent{Type: EventGameOver, Tick: 2})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Consume()
	if len(got) != 3 {
		t.Fatalf("Consume() returned %d events, want 3", len(got))
	}
	for i, want := range []EventType{EventSessionStarted, EventFoodEaten, EventGameOver} {
		if got[i].Type != want {
			t.Errorf("event %d type = %v, want %v", i, got[i].Type, want)
		}
	}

	if again := q.Consume(); again != nil {
		t.Errorf("second Consume() = %v, want nil", again)
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventFoodEaten, Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != constants.EventQueueSize {
		t.Fatalf("Consume() returned %d events, want %d", len(got), constants.EventQueueSize)
	}
	if got[0].Tick != 10 {
		t.Errorf("oldest retained tick = %d, want 10", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", got[len(got)-1].Tick, total-1)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 32

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventBonusExpired})
			}
		}()
	}
	wg.Wait()

	got := q.Consume()
	if len(got) != producers*perProducer {
		t.Errorf("Consume() returned %d events, want %d", len(got), producers*perProducer)
	}
}

// Producer and consumer share a lock, as the scheduler and driver do, across many ring wraps
func TestEventQueueLockedConsumerAcrossWrap(t *testing.T) {
	q := NewEventQueue()
	var mu sync.Mutex
	const total = constants.EventQueueSize * 4

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			mu.Lock()
			q.Push(GameEvent{Type: EventFoodEaten, Tick: uint64(i)})
			mu.Unlock()
		}
	}()

	var got []GameEvent
	drain := func() {
		mu.Lock()
		got = append(got, q.Consume()...)
		mu.Unlock()
	}
	for finished := false; !finished; {
		select {
		case <-done:
			finished = true
		default:
		}
		drain()
	}

	if len(got) == 0 {
		t.Fatal("consumer saw no events")
	}
	for i := 1; i < len(got); i++ {
		if got[i].Tick <= got[i-1].Tick {
			t.Fatalf("event %d tick %d after %d, want increasing", i, got[i].Tick, got[i-1].Tick)
		}
	}
	if last := got[len(got)-1].Tick; last != total-1 {
		t.Errorf("last tick = %d, want %d", last, total-1)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		et   EventType
		want string
	}{
		{EventSessionStarted, "SessionStarted"},
		{EventFoodEaten, "FoodEaten"},
		{EventBonusSpawned, "BonusSpawned"},
		{EventBonusEaten, "BonusEaten"},
		{EventBonusExpired, "BonusExpired"},
		{EventGameOver, "GameOver"},
		{EventType(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}
