// Package ebitenclock runs a cadence.Scheduler inside an Ebitengine game
// loop. Time advances by exactly one tick per Update, so scheduler passes
// happen on the game goroutine and animation timing follows the game's
// logical clock rather than the wall clock.
//
//	clock := ebitenclock.New(time.Time{})
//	sched := cadence.NewScheduler(cadence.SchedulerConfig{Clock: clock})
//
//	func (g *Game) Update() error { return clock.Update() }
package ebitenclock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/cadence"
)

// fallbackTPS is used when ebiten reports no fixed tick rate.
const fallbackTPS = 60

// Clock is a cadence.Clock driven by game ticks.
type Clock struct {
	*cadence.ManualClock

	// TPS overrides the tick rate. Zero reads ebiten.TPS on every Update.
	TPS int

	ticks uint64
}

// New returns a Clock reading start until the first Update.
func New(start time.Time) *Clock {
	return &Clock{ManualClock: cadence.NewManualClock(start)}
}

// Update advances the clock by one tick and fires every timer that came due.
// Its signature matches ebiten.Game.Update so it can be returned directly.
func (c *Clock) Update() error {
	c.ticks++
	c.Advance(c.TickDuration())
	return nil
}

// Ticks returns how many times Update has run.
func (c *Clock) Ticks() uint64 { return c.ticks }

// TickDuration returns the logical length of one tick.
func (c *Clock) TickDuration() time.Duration {
	tps := c.TPS
	if tps <= 0 {
		tps = ebiten.TPS()
	}
	if tps <= 0 {
		tps = fallbackTPS
	}
	return time.Second / time.Duration(tps)
}
