package field

import "image/color"

// DefaultFill is rgba(255,255,255,0.9), premultiplied.
var DefaultFill = color.RGBA{R: 230, G: 230, B: 230, A: 230}

// Canvas is a 2D drawing surface matching the host's visible box.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// Render clears c and draws every particle inside the visible box. Particles
// in the hidden margin are skipped. It returns the number of circles drawn.
func Render(c Canvas, particles []Particle, ext Extent, fill color.Color) int {
	c.Clear()
	drawn := 0
	for _, p := range particles {
		if !ext.Visible(p.Pos) {
			continue
		}
		c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, fill)
		drawn++
	}
	return drawn
}
