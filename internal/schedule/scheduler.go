// internal/schedule/scheduler.go
package schedule

import (
	"container/heap"
	"time"
)

// Action — отложенное действие. at: момент симуляции, на который оно было запланировано.
type Action func(at time.Duration)

// EventID идентифицирует запланированное событие. Ноль означает недействительный ID.
type EventID uint64

type entry struct {
	id       EventID
	at       time.Duration
	seq      uint64 // порядок постановки, разрешает совпадения по времени
	interval time.Duration
	action   Action
	index    int
}

// eventQueue — min-heap по (at, seq)
type eventQueue []*entry

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Scheduler — дискретная шкала событий на времени симуляции.
// Ничего не происходит само по себе: события срабатывают только внутри RunDue,
// который вызывает игровой цикл.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	nextID  EventID
	queue   eventQueue
	pending map[EventID]*entry
}

// New создаёт пустой планировщик с часами на нуле
func New() *Scheduler {
	return &Scheduler{
		nextID:  1,
		pending: make(map[EventID]*entry),
	}
}

// Now возвращает текущее время симуляции
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// At планирует action на момент at. Моменты в прошлом сработают при ближайшем RunDue.
func (s *Scheduler) At(at time.Duration, action Action) EventID {
	return s.push(at, 0, action)
}

// After планирует action через delay от текущего времени
func (s *Scheduler) After(delay time.Duration, action Action) EventID {
	if delay < 0 {
		delay = 0
	}
	return s.At(s.now+delay, action)
}

// Every планирует повторяющееся событие: первый раз через interval, затем каждые interval.
// Возвращает 0, если interval не положителен.
func (s *Scheduler) Every(interval time.Duration, action Action) EventID {
	if interval <= 0 {
		return 0
	}
	return s.push(s.now+interval, interval, action)
}

func (s *Scheduler) push(at, interval time.Duration, action Action) EventID {
	id := s.nextID
	s.nextID++
	e := &entry{id: id, at: at, interval: interval, action: action}
	s.enqueue(e)
	s.pending[id] = e
	return id
}

func (s *Scheduler) enqueue(e *entry) {
	e.seq = s.seq
	s.seq++
	heap.Push(&s.queue, e)
}

// Cancel снимает событие. Возвращает false, если оно уже сработало или не существовало.
func (s *Scheduler) Cancel(id EventID) bool {
	e, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	if e.index >= 0 {
		heap.Remove(&s.queue, e.index)
	}
	return true
}

// Pending возвращает число ожидающих событий
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// RunDue выполняет все события с временем <= Now в порядке (время, порядок постановки).
// События, запланированные во время выполнения и уже наступившие, тоже выполняются.
// Возвращает число сработавших событий.
func (s *Scheduler) RunDue() int {
	fired := 0
	for len(s.queue) > 0 && s.queue[0].at <= s.now {
		e := heap.Pop(&s.queue).(*entry)
		if e.interval > 0 {
			e.at += e.interval
			s.enqueue(e)
		} else {
			delete(s.pending, e.id)
		}
		at := e.at
		if e.interval > 0 {
			at -= e.interval
		}
		e.action(at)
		fired++
	}
	return fired
}

// AdvanceTo переводит часы на момент t. Часы не идут назад.
func (s *Scheduler) AdvanceTo(t time.Duration) {
	if t > s.now {
		s.now = t
	}
}
