package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/phanxgames/cadence"
	"github.com/urfave/cli"
)

var simFlags = []cli.Flag{
	cli.DurationFlag{
		Name:  "until, u",
		Usage: "virtual time to simulate (default: until every preset has finished)",
	},
	cli.BoolFlag{
		Name:  "trace, t",
		Usage: "print every step as it happens",
	},
}

// countingClock counts how often the scheduler arms its shared timer.
type countingClock struct {
	cadence.Clock
	arms int
}

func (c *countingClock) AfterFunc(d time.Duration, f func()) cadence.Timer {
	c.arms++
	return c.Clock.AfterFunc(d, f)
}

type simResult struct {
	steps []int
	arms  int
	idle  bool
}

func simulateAction(ctx *cli.Context) error {
	presets, err := readPresets(ctx)
	if err != nil {
		return err
	}
	res, err := simulate(ctx.App.Writer, presets, ctx.Duration("until"), ctx.Bool("trace"))
	if err != nil {
		return err
	}
	return report(ctx.App.Writer, presets, res)
}

func readPresets(ctx *cli.Context) ([]cadence.Preset, error) {
	path := ctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("missing presets file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cadence.LoadPresets(data)
}

// simulate runs presets on a virtual clock. A zero until runs one second
// past the end of the longest preset.
func simulate(w io.Writer, presets []cadence.Preset, until time.Duration, trace bool) (simResult, error) {
	start := time.Unix(0, 0)
	mc := cadence.NewManualClock(start)
	cc := &countingClock{Clock: mc}
	sched := cadence.NewScheduler(cadence.SchedulerConfig{Clock: cc})

	res := simResult{steps: make([]int, len(presets))}
	var last time.Duration
	for i, p := range presets {
		tr := p.Transition(func(v float64) {
			res.steps[i]++
			if trace {
				fmt.Fprintf(w, "%10v  %-20s %10.4f\n", mc.Now().Sub(start), p.Name, v)
			}
		})
		if err := sched.Add(tr); err != nil {
			return res, err
		}
		if end := p.Delay + p.Duration; end > last {
			last = end
		}
	}
	if until <= 0 {
		until = last + time.Second
	}
	mc.Advance(until)

	res.arms = cc.arms
	res.idle = mc.Pending() == 0
	return res, nil
}

func report(w io.Writer, presets []cadence.Preset, res simResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFPS\tDURATION\tFRAMES\tSTEPS\tSAVED")
	for i, p := range presets {
		frames := int(p.Duration.Seconds()*p.FPS) + 1
		saved := 0.0
		if frames > 0 && res.steps[i] < frames {
			saved = 100 * float64(frames-res.steps[i]) / float64(frames)
		}
		fmt.Fprintf(tw, "%s\t%g\t%v\t%d\t%d\t%.0f%%\n", p.Name, p.FPS, p.Duration, frames, res.steps[i], saved)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	state := "idle"
	if !res.idle {
		state = "still running"
	}
	_, err := fmt.Fprintf(w, "\ntimer armed %d times, scheduler %s\n", res.arms, state)
	return err
}
