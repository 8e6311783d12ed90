package cadence

import (
	"fmt"
	"log"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Preset is a declarative transition loaded from YAML:
//
//	presets:
//	  - name: fade-in
//	    duration: 750ms
//	    fps: 60
//	    ease: outCubic
//	    from: 0
//	    to: 1
//	    threshold: 0.002
type Preset struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	FPS      float64       `yaml:"fps"`
	Slack    float64       `yaml:"slack,omitempty"`
	Delay    time.Duration `yaml:"delay,omitempty"`
	Ease     string        `yaml:"ease,omitempty"`
	From     float64       `yaml:"from"`
	To       float64       `yaml:"to"`

	// Threshold is the smallest value change worth a frame. Zero steps on
	// every frame.
	Threshold float64 `yaml:"threshold,omitempty"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets parses a YAML preset document. Unknown easing names fall back
// to linear with a logged warning; descriptors are not validated until they
// are added to a Scheduler.
func LoadPresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cadence: parse presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("cadence: parse presets: no presets")
	}
	for i := range f.Presets {
		p := &f.Presets[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("preset-%d", i)
		}
		if p.Ease == "" {
			continue
		}
		if _, ok := EaseByName(p.Ease); !ok {
			log.Printf("cadence: preset %q: unknown ease %q, using linear", p.Name, p.Ease)
			p.Ease = "linear"
		}
	}
	return f.Presets, nil
}

// Transition builds the descriptor for p, applying values through step.
func (p Preset) Transition(step StepFunc) Transition {
	fn, ok := EaseByName(p.Ease)
	if !ok {
		fn = ease.Linear
	}
	shouldStep := Always()
	if p.Threshold > 0 {
		shouldStep = Threshold(p.Threshold)
	}
	return Transition{
		Name:        p.Name,
		Duration:    p.Duration,
		FPS:         p.FPS,
		Slack:       p.Slack,
		StartOffset: p.Delay,
		Ease:        FromTween(fn, p.From, p.To),
		Step:        step,
		ShouldStep:  shouldStep,
	}
}
