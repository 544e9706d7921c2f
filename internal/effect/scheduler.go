package effect

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler runs delayed and periodic work keyed by ID.
type Scheduler struct {
	clock  clockwork.Clock
	logger *slog.Logger

	mu     sync.Mutex
	tasks  map[ID]*scheduledTask
	gen    uint64
	closed bool
	wg     sync.WaitGroup
}

type scheduledTask struct {
	gen   uint64
	timer clockwork.Timer
	stop  chan struct{}
}

// NewScheduler creates a Scheduler that measures time with clock.
func NewScheduler(clock clockwork.Clock, logger *slog.Logger) *Scheduler {
	if clock == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scheduler{
		clock:  clock,
		logger: logger.With(slog.String("component", "effect_scheduler")),
		tasks:  make(map[ID]*scheduledTask),
	}
}

// After runs fn once after d. A pending instance of id is replaced.
func (s *Scheduler) After(id ID, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelLocked(id)

	s.gen++
	t := &scheduledTask{gen: s.gen}
	gen := s.gen
	t.timer = s.clock.AfterFunc(d, func() {
		s.fire(id, gen, true, fn)
	})
	s.tasks[id] = t

	s.logger.Debug("armed delayed effect", "effect_id", id, "delay", d)
}

// Every runs fn each period until id is cancelled. A pending instance of id is replaced.
func (s *Scheduler) Every(id ID, period time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.cancelLocked(id)

	s.gen++
	t := &scheduledTask{gen: s.gen, stop: make(chan struct{})}
	s.tasks[id] = t

	ticker := s.clock.NewTicker(period)
	s.wg.Add(1)
	go s.repeat(id, t.gen, ticker, t.stop, fn)

	s.logger.Debug("armed periodic effect", "effect_id", id, "period", period)
}

// repeat is the loop behind a periodic effect.
func (s *Scheduler) repeat(id ID, gen uint64, ticker clockwork.Ticker, stop <-chan struct{}, fn func()) {
	defer s.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			s.fire(id, gen, false, fn)
		}
	}
}

// fire runs fn only if the instance that armed it is still current.
func (s *Scheduler) fire(id ID, gen uint64, once bool, fn func()) {
	s.mu.Lock()
	t, ok := s.tasks[id]
	if s.closed || !ok || t.gen != gen {
		s.mu.Unlock()
		s.logger.Debug("dropped stale effect", "effect_id", id)
		return
	}
	if once {
		delete(s.tasks, id)
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	fn()
}

// Cancel stops the pending instance of id, if any.
func (s *Scheduler) Cancel(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked(id)
}

// CancelAll stops every pending instance.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.tasks {
		s.cancelLocked(id)
	}
}

func (s *Scheduler) cancelLocked(id ID) {
	t, ok := s.tasks[id]
	if !ok {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.stop != nil {
		close(t.stop)
	}
	delete(s.tasks, id)
}

// Pending returns the ids with pending work, sorted.
func (s *Scheduler) Pending() []ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]ID, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Close cancels everything and waits for running callbacks to return.
// Nothing fires after Close returns.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for id := range s.tasks {
		s.cancelLocked(id)
	}
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
}
