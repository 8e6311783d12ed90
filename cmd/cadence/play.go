package main

import (
	"io"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/phanxgames/cadence"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// barTotal is the resolution of a progress bar.
const barTotal = 1000

func playAction(ctx *cli.Context) error {
	presets, err := readPresets(ctx)
	if err != nil {
		return err
	}
	return play(ctx.App.Writer, presets, cadence.SystemClock)
}

// play runs presets against clock and renders one bar per preset, returning
// once every bar has completed.
func play(w io.Writer, presets []cadence.Preset, clock cadence.Clock) error {
	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(w), mpb.WithRefreshRate(30*time.Millisecond))
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	sched := cadence.NewScheduler(cadence.SchedulerConfig{Clock: clock})

	for _, pr := range presets {
		var bits atomic.Uint64
		bar := p.New(barTotal,
			barStyle,
			mpb.PrependDecorators(
				decor.Name(pr.Name, decor.WC{W: len(pr.Name) + 1, C: decor.DindentRight}),
			),
			mpb.AppendDecorators(
				decor.Any(func(decor.Statistics) string {
					return formatValue(math.Float64frombits(bits.Load()))
				}, decor.WC{W: 10}),
				decor.Percentage(decor.WC{W: 5}),
			),
		)
		end := clock.Now().Add(pr.Delay + pr.Duration)
		tr := pr.Transition(func(v float64) {
			bits.Store(math.Float64bits(v))
			if pr.Duration <= 0 || !clock.Now().Before(end) {
				bar.SetTotal(barTotal, true)
				return
			}
			bar.SetCurrent(int64(barTotal * normalize(v, pr.From, pr.To)))
		})
		if err := sched.Add(tr); err != nil {
			p.Shutdown()
			return err
		}
	}
	p.Wait()
	return nil
}

// normalize maps v onto [0, 1) relative to the preset's range. Overshooting
// curves are clamped so the bar never reports completion early.
func normalize(v, from, to float64) float64 {
	if from == to {
		return 0
	}
	f := (v - from) / (to - from)
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f >= 1:
		return float64(barTotal-1) / barTotal
	}
	return f
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
