package cadence

import (
	"sync"
	"time"
)

const (
	// DefaultReapThreshold is how many finished transitions may accumulate
	// before the registry is compacted.
	DefaultReapThreshold = 10

	// DefaultLookahead bounds how far ahead a next-frame prediction scans.
	DefaultLookahead = time.Second
)

// SchedulerConfig holds optional parameters for [NewScheduler]. The zero
// value is valid and selects the defaults.
type SchedulerConfig struct {
	// Clock supplies the current time and the shared timer. Defaults to
	// SystemClock.
	Clock Clock

	// ReapThreshold defaults to DefaultReapThreshold.
	ReapThreshold int

	// Lookahead defaults to DefaultLookahead.
	Lookahead time.Duration

	// DefaultSlack applies to transitions registered with Slack == 0.
	// Defaults to DefaultSlack.
	DefaultSlack float64
}

// Scheduler drives many transitions from one shared timer. Each pass steps
// the transitions that need a frame, predicts when each one next needs
// another, and arms the timer for the earliest of those predictions, never
// sooner than the frame period of the fastest pending transition.
//
// Passes run synchronously inside Add and from the timer callback. Add and
// Run may be called from any goroutine, including from inside a Step
// callback: if a pass is already in progress the call is folded into a
// follow-up pass run by the goroutine that owns the current one.
type Scheduler struct {
	clock         Clock
	reapThreshold int
	lookahead     time.Duration
	defaultSlack  float64

	mu       sync.Mutex
	running  bool
	again    bool
	incoming []*record

	// Owned by the goroutine that set running.
	registry []*record
	timer    Timer
}

// NewScheduler creates an idle scheduler.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	s := &Scheduler{
		clock:         cfg.Clock,
		reapThreshold: cfg.ReapThreshold,
		lookahead:     cfg.Lookahead,
		defaultSlack:  cfg.DefaultSlack,
	}
	if s.clock == nil {
		s.clock = SystemClock
	}
	if s.reapThreshold <= 0 {
		s.reapThreshold = DefaultReapThreshold
	}
	if s.lookahead <= 0 {
		s.lookahead = DefaultLookahead
	}
	if s.defaultSlack <= 0 {
		s.defaultSlack = DefaultSlack
	}
	return s
}

// Add registers tr and runs a pass at the current time before returning, so
// a transition with a non-positive Duration has already reached its final
// value when Add returns. Invalid descriptors are rejected without side
// effects.
func (s *Scheduler) Add(tr Transition) error {
	if err := tr.validate(); err != nil {
		return err
	}
	now := s.clock.Now()
	rec := newRecord(tr, now, s.defaultSlack)

	s.mu.Lock()
	s.incoming = append(s.incoming, rec)
	s.mu.Unlock()

	s.RunAt(now)
	return nil
}

// Run runs a pass at the clock's current time.
func (s *Scheduler) Run() {
	s.RunAt(s.clock.Now())
}

// RunAt runs a pass as if the current time were now. Panics raised by Ease,
// Step or ShouldStep propagate to the caller; the scheduler remains usable.
func (s *Scheduler) RunAt(now time.Time) {
	s.mu.Lock()
	if s.running {
		s.again = true
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
		}
	}()

	// settled means every record already in the registry was swept at now,
	// so a follow-up pass at the same instant only needs the new arrivals.
	settled := false
	for {
		s.mu.Lock()
		from := 0
		if settled {
			from = len(s.registry)
		}
		s.registry = append(s.registry, s.incoming...)
		s.incoming = nil
		s.again = false
		s.mu.Unlock()

		s.pass(now, from)

		s.mu.Lock()
		if !s.again && len(s.incoming) == 0 {
			s.running = false
			done = true
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
		next := s.clock.Now()
		settled = next.Equal(now)
		now = next
	}
}

// pass is one sweep of the registry at time now. Records before index from
// were already swept at now; they count toward the timer but are not
// stepped again.
func (s *Scheduler) pass(now time.Time, from int) {
	var (
		unreaped int
		pending  int
		fastest  time.Duration
		wake     time.Time
	)
	for i, r := range s.registry {
		if r.finished {
			unreaped++
			continue
		}
		if i < from {
			pending++
			if fastest == 0 || r.period < fastest {
				fastest = r.period
			}
			if wake.IsZero() || r.nextFrame.Before(wake) {
				wake = r.nextFrame
			}
			continue
		}

		elapsed := now.Sub(r.start)
		if r.Duration <= 0 || elapsed > r.Duration {
			r.finished = true
			r.hasNextFrame = false
			r.apply(r.Ease(1))
			continue
		}

		pending++
		if fastest == 0 || r.period < fastest {
			fastest = r.period
		}

		horizon := now.Add(time.Duration(float64(r.period) * r.Slack))
		if !r.hasNextFrame || !r.nextFrame.After(horizon) {
			r.apply(r.Ease(r.progress(elapsed)))
			r.nextFrame = now.Add(s.predict(r, now, elapsed))
			r.hasNextFrame = true
		}

		if wake.IsZero() || r.nextFrame.Before(wake) {
			wake = r.nextFrame
		}
	}

	if unreaped >= s.reapThreshold {
		s.reap()
	}
	s.arm(now, pending, fastest, wake)
}

// predict scans forward one frame period at a time, starting from the frame
// boundary at or before now, until ShouldStep wants the eased value or the
// lookahead is spent. Aligning to absolute frame boundaries keeps
// transitions with the same FPS waking together. The result is relative to
// now and always positive.
func (s *Scheduler) predict(r *record, now time.Time, elapsed time.Duration) time.Duration {
	phase := time.Duration(now.UnixNano() % int64(r.period))
	if phase < 0 {
		phase += r.period
	}
	delta := -phase
	for {
		delta += r.period
		if delta >= s.lookahead {
			return delta
		}
		next := r.Ease(r.progress(elapsed + delta))
		if r.ShouldStep(next, r.lastValue) {
			return delta
		}
	}
}

// reap drops every finished record, building a fresh slice so no caller
// ever observes a registry mutated in place.
func (s *Scheduler) reap() {
	kept := make([]*record, 0, len(s.registry))
	for _, r := range s.registry {
		if !r.finished {
			kept = append(kept, r)
		}
	}
	s.registry = kept
}

// arm replaces the shared timer. With nothing pending the scheduler goes idle
// and holds no timer at all.
func (s *Scheduler) arm(now time.Time, pending int, fastest time.Duration, wake time.Time) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if pending == 0 {
		return
	}
	delay := wake.Sub(now)
	if delay < fastest {
		delay = fastest
	}
	s.timer = s.clock.AfterFunc(delay, s.Run)
}
