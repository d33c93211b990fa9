package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight  = 30.0
	headerHeight = 25.0
	labelHeight  = 15.0
	scrollStep   = 20.0
)

var (
	panelBG      = color.RGBA{R: 40, G: 40, B: 45, A: 230}
	panelBorder  = color.RGBA{R: 100, G: 100, B: 110, A: 255}
	sectionColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
)

// widget is what a panel row holds.
type widget interface {
	Update()
	Draw(screen *ebiten.Image)
}

// row is one labelled widget. label is empty for buttons, which carry their
// own text.
type row struct {
	label  func() string
	height float64
	widget widget
	moveTo func(y float64)
}

type section struct {
	title string
	rows  []row
}

// UIPanel stacks widgets in titled sections. Content taller than the panel
// scrolls with the mouse wheel.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Hidden        bool

	scroll   float64
	sections []*section
}

func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{X: x, Y: y, Width: width, Height: height, Title: "Configuration"}
}

// AddSection starts a new section; later widgets go into it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, &section{title: title})
}

func (p *UIPanel) add(r row) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	s := p.sections[len(p.sections)-1]
	s.rows = append(s.rows, r)
	p.layout()
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(row{
		label:  func() string { return fmt.Sprintf("%s: %.3g", s.Label, s.Value) },
		height: s.H + 25,
		widget: s,
		moveTo: func(y float64) { s.Y = y + labelHeight },
	})
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(row{
		label:  func() string { return c.Label },
		height: c.Size + labelHeight + 5,
		widget: c,
		moveTo: func(y float64) { c.Y = y + labelHeight },
	})
	return c
}

// AddButton adds a full-width button.
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 20, label, onClick)
	p.add(row{
		height: b.Height + 10,
		widget: b,
		moveTo: func(y float64) { b.Y = y },
	})
	return b
}

// Toggle shows or hides the panel.
func (p *UIPanel) Toggle() {
	p.Hidden = !p.Hidden
}

// Contains reports whether (x, y) lies on the visible panel.
func (p *UIPanel) Contains(x, y float64) bool {
	return !p.Hidden && x >= p.X && x <= p.X+p.Width && y >= p.Y && y <= p.Y+p.Height
}

// contentHeight is the height of everything below the title.
func (p *UIPanel) contentHeight() float64 {
	h := 0.0
	for _, s := range p.sections {
		h += headerHeight
		for _, r := range s.rows {
			h += r.height
		}
	}
	return h
}

// scrollBy moves the content by dy wheel units, clamped to the overflow.
func (p *UIPanel) scrollBy(dy float64) {
	overflow := max(0, titleHeight+p.contentHeight()+10-p.Height)
	p.scroll = min(max(p.scroll-dy*scrollStep, 0), overflow)
}

// layout places every widget for the current scroll offset, so input hit
// tests and drawing agree.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.scroll
	for _, s := range p.sections {
		y += headerHeight
		for _, r := range s.rows {
			r.moveTo(y)
			y += r.height
		}
	}
}

func (p *UIPanel) visible(top, height float64) bool {
	return top >= p.Y+titleHeight-5 && top+height <= p.Y+p.Height
}

// Update handles input for all widgets in view.
func (p *UIPanel) Update() {
	if p.Hidden {
		return
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		p.scrollBy(dy)
	}
	p.layout()

	y := p.Y + titleHeight - p.scroll
	for _, s := range p.sections {
		y += headerHeight
		for _, r := range s.rows {
			if p.visible(y, r.height) {
				r.widget.Update()
			}
			y += r.height
		}
	}
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), panelBG, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, panelBorder, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + titleHeight - p.scroll
	for _, s := range p.sections {
		if p.visible(y, headerHeight) {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20, sectionColor, true)
			ebitenutil.DebugPrintAt(screen, s.title, int(p.X+10), int(y+5))
		}
		y += headerHeight
		for _, r := range s.rows {
			if p.visible(y, r.height) {
				if r.label != nil {
					ebitenutil.DebugPrintAt(screen, r.label(), int(p.X+10), int(y))
				}
				r.widget.Draw(screen)
			}
			y += r.height
		}
	}
}
