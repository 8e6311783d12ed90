package cadence

import (
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// Linear is the identity curve.
func Linear(progress float64) float64 { return progress }

// Constant returns a curve that always yields v.
func Constant(v float64) EaseFunc {
	return func(float64) float64 { return v }
}

// FromTween adapts a gween easing curve to normalized progress, producing
// values from `from` at progress 0 to `to` at progress 1.
func FromTween(fn ease.TweenFunc, from, to float64) EaseFunc {
	b := float32(from)
	c := float32(to - from)
	return func(progress float64) float64 {
		return float64(fn(float32(progress), b, c, 1))
	}
}

// Threshold returns a ShouldStepFunc that asks for a frame once the value has
// moved by more than eps.
func Threshold(eps float64) ShouldStepFunc {
	return func(next, last float64) bool {
		return math.Abs(next-last) > eps
	}
}

// Always returns a ShouldStepFunc that asks for every frame, disabling
// lookahead skipping.
func Always() ShouldStepFunc {
	return func(float64, float64) bool { return true }
}

var easeNames = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"inquad":    ease.InQuad,
	"outquad":   ease.OutQuad,
	"inoutquad": ease.InOutQuad,
	"outinquad": ease.OutInQuad,

	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"outincubic": ease.OutInCubic,

	"inquart":    ease.InQuart,
	"outquart":   ease.OutQuart,
	"inoutquart": ease.InOutQuart,
	"outinquart": ease.OutInQuart,

	"inquint":    ease.InQuint,
	"outquint":   ease.OutQuint,
	"inoutquint": ease.InOutQuint,
	"outinquint": ease.OutInQuint,

	"insine":    ease.InSine,
	"outsine":   ease.OutSine,
	"inoutsine": ease.InOutSine,
	"outinsine": ease.OutInSine,

	"inexpo":    ease.InExpo,
	"outexpo":   ease.OutExpo,
	"inoutexpo": ease.InOutExpo,
	"outinexpo": ease.OutInExpo,

	"incirc":    ease.InCirc,
	"outcirc":   ease.OutCirc,
	"inoutcirc": ease.InOutCirc,
	"outincirc": ease.OutInCirc,

	"inelastic":    ease.InElastic,
	"outelastic":   ease.OutElastic,
	"inoutelastic": ease.InOutElastic,
	"outinelastic": ease.OutInElastic,

	"inback":    ease.InBack,
	"outback":   ease.OutBack,
	"inoutback": ease.InOutBack,
	"outinback": ease.OutInBack,

	"inbounce":    ease.InBounce,
	"outbounce":   ease.OutBounce,
	"inoutbounce": ease.InOutBounce,
	"outinbounce": ease.OutInBounce,
}

// EaseByName looks up a gween curve by name. Matching ignores case, dashes
// and underscores, so "outCubic", "out-cubic" and "OUT_CUBIC" are equivalent.
func EaseByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	fn, ok := easeNames[key]
	return fn, ok
}
