package cadence

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates component-wise between c and to. f is not clamped.
func (c Color) Lerp(to Color, f float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*f,
		G: c.G + (to.G-c.G)*f,
		B: c.B + (to.B-c.B)*f,
		A: c.A + (to.A-c.A)*f,
	}
}

// propertyEpsilon is the smallest change worth a frame for the property
// helpers below: about a third of one 8-bit color step.
const propertyEpsilon = 1.0 / 768

// Float returns a Transition that animates *target from its current value to
// the given value over duration using the easing function. The starting
// value is captured when Float is called.
func Float(target *float64, to float64, duration time.Duration, fps float64, fn ease.TweenFunc) Transition {
	return Transition{
		Duration:   duration,
		FPS:        fps,
		Ease:       FromTween(fn, *target, to),
		Step:       func(v float64) { *target = v },
		ShouldStep: Threshold(propertyEpsilon),
	}
}

// ColorTo returns a Transition that animates all four components of *target
// toward the given color. The curve drives a single interpolation factor,
// so the components move in lockstep.
func ColorTo(target *Color, to Color, duration time.Duration, fps float64, fn ease.TweenFunc) Transition {
	from := *target
	return Transition{
		Duration:   duration,
		FPS:        fps,
		Ease:       FromTween(fn, 0, 1),
		Step:       func(f float64) { *target = from.Lerp(to, f) },
		ShouldStep: Threshold(propertyEpsilon),
	}
}
