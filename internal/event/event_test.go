package event

import "testing"

type countingListener struct {
	calls int
	last  Event
}

func (l *countingListener) OnEvent(e Event) {
	l.calls++
	l.last = e
}

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(StatsChanged, a)
	d.Subscribe(StatsChanged, b)
	d.Subscribe(GameOver, b)

	d.Dispatch(Event{Type: StatsChanged, Data: 7})
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("Expected one call each, got %d and %d", a.calls, b.calls)
	}
	if a.last.Data != 7 {
		t.Errorf("Expected payload 7, got %v", a.last.Data)
	}

	d.Dispatch(Event{Type: EnemyKilled})
	if a.calls != 1 || b.calls != 1 {
		t.Error("Unsubscribed event type reached listeners")
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(WaveStarted, a)
	d.Subscribe(WaveStarted, b)

	d.Unsubscribe(WaveStarted, a)
	d.Dispatch(Event{Type: WaveStarted})

	if a.calls != 0 {
		t.Errorf("Unsubscribed listener was called %d times", a.calls)
	}
	if b.calls != 1 {
		t.Errorf("Remaining listener was called %d times", b.calls)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	got := 0
	f := ListenerFunc(func(e Event) { got++ })
	d.Subscribe(GameOver, f)
	d.Unsubscribe(GameOver, f) // no-op for funcs

	d.Dispatch(Event{Type: GameOver})
	if got != 1 {
		t.Errorf("Expected func listener to be called once, got %d", got)
	}
}
