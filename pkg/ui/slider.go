package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a simple UI widget
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	// Step snaps Value to multiples of Step when positive (integer knobs).
	Step float64

	changed bool
}

// NewSlider creates a slider clamped to [min, max].
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: w, H: 10}
	s.Value = s.clamp(value)
	return s
}

func (s *Slider) clamp(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + float64(int((v-s.Min)/s.Step+0.5))*s.Step
	}
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// SetValueAt sets the value from a horizontal pixel position.
func (s *Slider) SetValueAt(px float64) {
	if s.W <= 0 {
		return
	}
	p := (px - s.X) / s.W
	v := s.clamp(s.Min + p*(s.Max-s.Min))
	if v != s.Value {
		s.Value = v
		s.changed = true
	}
}

// SetValue moves the knob without counting as a user edit. The value is
// clamped to the range but not snapped to Step.
func (s *Slider) SetValue(v float64) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Changed reports whether the value moved since the last call.
func (s *Slider) Changed() bool {
	c := s.changed
	s.changed = false
	return c
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	s.handle(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (s *Slider) handle(x, y float64, pressed bool) {
	// Check if mouse is clicking inside the slider area
	if pressed && s.hit(x, y) {
		s.SetValueAt(x)
	}
}

func (s *Slider) hit(x, y float64) bool {
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
