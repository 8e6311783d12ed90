// Package cadence schedules time-based eased transitions from a single
// shared timer.
//
// Each [Transition] pairs an easing curve with a Step callback that applies
// the eased value, usually to some visual property. A [Scheduler] steps every
// registered transition that needs a frame, predicts when each one will next
// change by a visible amount, and arms one timer for the earliest of those
// predictions. Transitions on slow-settling curves therefore skip most of
// their frames, and finished transitions are dropped in batches rather than
// one at a time.
//
// # Quick start
//
//	sched := cadence.NewScheduler(cadence.SchedulerConfig{})
//	err := sched.Add(cadence.Transition{
//		Duration:   750 * time.Millisecond,
//		FPS:        60,
//		Ease:       cadence.FromTween(ease.OutCubic, 0, 1),
//		Step:       func(v float64) { node.Alpha = v },
//		ShouldStep: cadence.Threshold(0.002),
//	})
//
// Every transition is stepped with its final value Ease(1) exactly once,
// after its duration has elapsed, however many intermediate frames were
// skipped.
//
// # Clocks
//
// Time comes from an injected [Clock]. [SystemClock] uses the wall clock and
// fires the shared timer on its own goroutine. [ManualClock] only moves when
// advanced, which makes scheduling deterministic in tests and simulations.
// Package ebitenclock advances a clock once per game tick so transitions run
// inside an [Ebitengine] Update loop.
//
// # Easing
//
// Any curve from [gween] can be used through [FromTween] or looked up by name
// with [EaseByName]. [Float] and [ColorTo] build ready-made transitions for
// plain float and color fields. Transitions can also be declared in YAML and
// loaded with [LoadPresets].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package cadence
