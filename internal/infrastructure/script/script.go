// Package script loads YAML input scripts that drive the canvas headlessly.
//
// A script is a list of steps. Each step carries exactly one action:
//
//	name: drag two cards together
//	viewport: {width: 1280, height: 800}
//	steps:
//	  - down: {x: 100, y: 40}
//	  - move: {x: 300, y: 40}
//	  - tick: 40ms
//	  - up: {}
//	  - key: z
//	  - type: idkfa
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default viewport of scripts that do not declare one.
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 800.0
)

var (
	// ErrEmptyScript is returned for scripts without steps.
	ErrEmptyScript = errors.New("script has no steps")
	// ErrInvalidStep is returned for steps with zero or several actions.
	ErrInvalidStep = errors.New("step must contain exactly one action")
)

// Point is a position in screen pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pointer is a mouse or pen event.
type Pointer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Button string  `yaml:"button"` // primary (default), middle, secondary
	Shift  bool    `yaml:"shift"`
}

// Wheel is a scroll event at a screen position.
type Wheel struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	DeltaY float64 `yaml:"delta_y"`
}

// Drag expands into a press at From, Steps moves towards To and a release.
type Drag struct {
	From  Point `yaml:"from"`
	To    Point `yaml:"to"`
	Steps int   `yaml:"steps"`
	Shift bool  `yaml:"shift"`
}

// Step is one scripted action.
type Step struct {
	Down   *Pointer `yaml:"down,omitempty"`
	Move   *Pointer `yaml:"move,omitempty"`
	Up     *Pointer `yaml:"up,omitempty"`
	Cancel bool     `yaml:"cancel,omitempty"`
	Drag   *Drag    `yaml:"drag,omitempty"`
	Wheel  *Wheel   `yaml:"wheel,omitempty"`

	TouchStart []Point `yaml:"touch_start,omitempty"`
	TouchMove  []Point `yaml:"touch_move,omitempty"`
	// TouchEnd is the number of fingers left on the screen.
	TouchEnd *int `yaml:"touch_end,omitempty"`

	Key   string `yaml:"key,omitempty"`
	KeyUp string `yaml:"key_up,omitempty"`
	// Type presses every character of the string in turn.
	Type string `yaml:"type,omitempty"`

	// Tick advances the virtual clock, running frames along the way.
	Tick time.Duration `yaml:"tick,omitempty"`

	// Toggle flips the visibility of a metric, written "scene/metric".
	Toggle string `yaml:"toggle,omitempty"`
}

// Viewport is the simulated screen size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Script is a named list of steps.
type Script struct {
	Name     string   `yaml:"name"`
	Viewport Viewport `yaml:"viewport"`
	Steps    []Step   `yaml:"steps"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes and validates a script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyDefaults(s *Script) {
	if s.Viewport.Width <= 0 {
		s.Viewport.Width = DefaultViewportWidth
	}
	if s.Viewport.Height <= 0 {
		s.Viewport.Height = DefaultViewportHeight
	}
	for i := range s.Steps {
		if d := s.Steps[i].Drag; d != nil && d.Steps <= 0 {
			d.Steps = 1
		}
	}
}

// Validate checks that every step carries exactly one action.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	var problems []string
	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			problems = append(problems, fmt.Sprintf("step %d: %d actions", i+1, n))
		}
		if step.Toggle != "" && !strings.Contains(step.Toggle, "/") {
			problems = append(problems, fmt.Sprintf("step %d: toggle %q is not scene/metric", i+1, step.Toggle))
		}
		if step.Tick < 0 {
			problems = append(problems, fmt.Sprintf("step %d: negative tick", i+1))
		}
		if len(step.TouchStart) > 2 || len(step.TouchMove) > 2 {
			problems = append(problems, fmt.Sprintf("step %d: at most two touches are supported", i+1))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidStep, strings.Join(problems, "\n  - "))
	}
	return nil
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Down != nil,
		s.Move != nil,
		s.Up != nil,
		s.Cancel,
		s.Drag != nil,
		s.Wheel != nil,
		s.TouchStart != nil,
		s.TouchMove != nil,
		s.TouchEnd != nil,
		s.Key != "",
		s.KeyUp != "",
		s.Type != "",
		s.Tick > 0,
		s.Toggle != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// Interpolate returns the n intermediate positions of a drag, ending at To.
func (d Drag) Interpolate() []Point {
	n := d.Steps
	if n <= 0 {
		n = 1
	}
	out := make([]Point, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		out[i-1] = Point{
			X: d.From.X + (d.To.X-d.From.X)*t,
			Y: d.From.Y + (d.To.Y-d.From.Y)*t,
		}
	}
	return out
}
