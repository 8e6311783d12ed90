package ebitenclock

import (
	"testing"
	"time"

	"github.com/phanxgames/cadence"
)

func TestUpdateAdvancesOneTick(t *testing.T) {
	c := New(time.Unix(0, 0))
	c.TPS = 50
	for i := 0; i < 10; i++ {
		if err := c.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if got := c.Now().Sub(time.Unix(0, 0)); got != 200*time.Millisecond {
		t.Errorf("now = %v, want 200ms", got)
	}
	if c.Ticks() != 10 {
		t.Errorf("ticks = %d, want 10", c.Ticks())
	}
}

func TestDefaultTickDuration(t *testing.T) {
	c := New(time.Time{})
	if d := c.TickDuration(); d <= 0 || d > time.Second {
		t.Errorf("tick duration = %v, want a positive sub-second tick", d)
	}
}

func TestSchedulerOnGameTicks(t *testing.T) {
	c := New(time.Unix(0, 0))
	c.TPS = 60
	s := cadence.NewScheduler(cadence.SchedulerConfig{Clock: c})

	x := 0.0
	var frames []uint64
	tr := cadence.Transition{
		Duration:   500 * time.Millisecond,
		FPS:        30,
		Ease:       cadence.Linear,
		Step:       func(v float64) { x = v; frames = append(frames, c.Ticks()) },
		ShouldStep: cadence.Always(),
	}
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		_ = c.Update()
	}

	if x != 1 {
		t.Errorf("x = %f, want 1", x)
	}
	if c.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", c.Pending())
	}
	// A 30 fps transition on a 60 tps clock steps at most every other tick.
	for i := 1; i < len(frames); i++ {
		if frames[i] == frames[i-1] {
			t.Fatalf("stepped twice on tick %d", frames[i])
		}
	}
}
