package cadence

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// EaseFunc maps normalized progress to an output value. Progress is 0 at the
// start of a transition and 1 at its end; values outside [0, 1] are passed
// through unclamped, so curves must tolerate extrapolation.
type EaseFunc func(progress float64) float64

// StepFunc applies an eased value, typically to a visual property. It may be
// called with the same value more than once.
type StepFunc func(value float64)

// ShouldStepFunc reports whether next differs enough from last, the most
// recently applied value, to be worth a frame.
type ShouldStepFunc func(next, last float64) bool

// DefaultSlack is the prediction tolerance used when Transition.Slack is zero.
const DefaultSlack = 4

// MaxFPS is the highest step rate a Transition may request.
const MaxFPS = 10000

var (
	ErrInvalidFPS        = errors.New("fps must be in (0, MaxFPS]")
	ErrInvalidSlack      = errors.New("slack must be finite and not negative")
	ErrMissingEase       = errors.New("ease func is required")
	ErrMissingStep       = errors.New("step func is required")
	ErrMissingShouldStep = errors.New("should-step func is required")
)

// Transition describes one time-based eased animation. The scheduler copies
// it on registration; later changes to the caller's value have no effect.
type Transition struct {
	// Name identifies the transition in errors and traces. Optional.
	Name string

	// Duration is the length of the animation. A non-positive duration
	// finishes on the first scheduler pass with Step(Ease(1)).
	Duration time.Duration

	// FPS is the target step rate in frames per second.
	FPS float64

	// Slack is how many frame periods ahead a previous prediction may lie
	// and still be trusted without re-evaluating the curve. Zero means
	// DefaultSlack.
	Slack float64

	// StartOffset delays the start relative to registration time.
	StartOffset time.Duration

	Ease       EaseFunc
	Step       StepFunc
	ShouldStep ShouldStepFunc
}

func (tr *Transition) validate() error {
	var err error
	switch {
	case tr.FPS <= 0 || tr.FPS > MaxFPS || math.IsNaN(tr.FPS):
		err = ErrInvalidFPS
	case tr.Slack < 0 || math.IsNaN(tr.Slack) || math.IsInf(tr.Slack, 0):
		err = ErrInvalidSlack
	case tr.Ease == nil:
		err = ErrMissingEase
	case tr.Step == nil:
		err = ErrMissingStep
	case tr.ShouldStep == nil:
		err = ErrMissingShouldStep
	}
	if err != nil {
		return fmt.Errorf("cadence: add transition %q: %w", tr.Name, err)
	}
	return nil
}

// record is a registered transition plus the bookkeeping the scheduler
// mutates. Only the goroutine running a pass touches it.
type record struct {
	Transition

	start  time.Time
	period time.Duration

	finished bool

	nextFrame    time.Time
	hasNextFrame bool

	lastValue    float64
	hasLastValue bool
}

func newRecord(tr Transition, now time.Time, defaultSlack float64) *record {
	if tr.Slack == 0 {
		tr.Slack = defaultSlack
	}
	period := time.Duration(float64(time.Second) / tr.FPS)
	if period <= 0 {
		period = 1
	}
	return &record{
		Transition: tr,
		start:      now.Add(tr.StartOffset),
		period:     period,
	}
}

// apply steps the transition and remembers the value as the last one shown.
func (r *record) apply(v float64) {
	r.lastValue = v
	r.hasLastValue = true
	r.Step(v)
}

// progress returns elapsed/Duration for an elapsed time since start.
func (r *record) progress(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(r.Duration)
}
