package cadence

import (
	"math"
	"strings"
	"testing"
	"time"
)

const presetYAML = `
presets:
  - name: fade-in
    duration: 750ms
    fps: 60
    ease: outCubic
    from: 0
    to: 1
    threshold: 0.002
  - name: slide
    duration: 1.5s
    fps: 30
    slack: 2
    delay: 250ms
    ease: in-out-sine
    from: -200
    to: 0
  - duration: 1s
    fps: 24
    ease: wobble
    to: 5
`

func TestLoadPresets(t *testing.T) {
	ps, err := LoadPresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 3 {
		t.Fatalf("got %d presets, want 3", len(ps))
	}

	fade := ps[0]
	if fade.Name != "fade-in" || fade.Duration != 750*time.Millisecond || fade.FPS != 60 {
		t.Errorf("fade-in = %+v", fade)
	}
	if fade.Threshold != 0.002 {
		t.Errorf("threshold = %f, want 0.002", fade.Threshold)
	}

	slide := ps[1]
	if slide.Delay != 250*time.Millisecond || slide.Slack != 2 || slide.From != -200 {
		t.Errorf("slide = %+v", slide)
	}

	anon := ps[2]
	if anon.Name != "preset-2" {
		t.Errorf("name = %q, want preset-2", anon.Name)
	}
	if anon.Ease != "linear" {
		t.Errorf("ease = %q, want linear fallback", anon.Ease)
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "presets: []", "no presets"},
		{"malformed", "presets: [", "parse presets"},
		{"bad duration", "presets:\n  - duration: soon\n    fps: 30\n", "parse presets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestPresetTransitionRuns(t *testing.T) {
	ps, err := LoadPresets([]byte(presetYAML))
	if err != nil {
		t.Fatal(err)
	}
	s, clock := newTestScheduler()

	var fade, slide []float64
	if err := s.Add(ps[0].Transition(func(v float64) { fade = append(fade, v) })); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ps[1].Transition(func(v float64) { slide = append(slide, v) })); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3 * time.Second)

	if got := fade[len(fade)-1]; math.Abs(got-1) > 1e-4 {
		t.Errorf("fade ended at %f, want 1", got)
	}
	if got := slide[len(slide)-1]; math.Abs(got) > 1e-3 {
		t.Errorf("slide ended at %f, want 0", got)
	}
	if s.registry[1].start.Sub(epoch) != 250*time.Millisecond {
		t.Errorf("slide start = %v, want 250ms", s.registry[1].start.Sub(epoch))
	}
	if clock.Pending() != 0 {
		t.Error("timer still armed after all presets finished")
	}
}

func TestPresetZeroThresholdStepsEveryFrame(t *testing.T) {
	p := Preset{Name: "flat", Duration: time.Second, FPS: 10, Ease: "linear", From: 3, To: 3}
	s, clock := newTestScheduler()
	n := 0
	if err := s.Add(p.Transition(func(float64) { n++ })); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * time.Second)

	// One step per 100ms frame over 1s, plus the terminal step.
	if n < 10 {
		t.Errorf("stepped %d times, want one per frame", n)
	}
}
