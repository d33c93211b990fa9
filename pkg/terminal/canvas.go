// Package terminal hosts a particle field in a text terminal. The field
// still works in pixels: every cell stands for CellWidth x CellHeight of
// them, and particles are plotted as dots whose glyph grows with radius.
package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

var glyphs = []rune{'·', '•', '●'}

func glyphFor(radius float64) rune {
	switch {
	case radius < 1.5:
		return glyphs[0]
	case radius < 2.3:
		return glyphs[1]
	default:
		return glyphs[2]
	}
}

func glyphRank(r rune) int {
	for i, g := range glyphs {
		if g == r {
			return i
		}
	}
	return -1
}

// Canvas maps field pixels onto screen cells.
type Canvas struct {
	screen       tcell.Screen
	cellW, cellH float64
}

// NewCanvas returns a canvas over screen. Cell sizes below one pixel are
// raised to one.
func NewCanvas(screen tcell.Screen, cellW, cellH float64) *Canvas {
	return &Canvas{screen: screen, cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// PixelSize is the field size matching the current screen.
func (c *Canvas) PixelSize() (float64, float64) {
	w, h := c.screen.Size()
	return float64(w) * c.cellW, float64(h) * c.cellH
}

// CellCenter converts a cell coordinate to the pixel at its centre.
func (c *Canvas) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

func (c *Canvas) Clear() { c.screen.Clear() }

// FillCircle plots one particle. When several land in the same cell the
// largest glyph wins.
func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	col, row := int(x/c.cellW), int(y/c.cellH)
	w, h := c.screen.Size()
	if x < 0 || y < 0 || col >= w || row >= h {
		return
	}
	g := glyphFor(r)
	if current, _, _, _ := c.screen.GetContent(col, row); glyphRank(current) > glyphRank(g) {
		return
	}
	c.screen.SetContent(col, row, g, nil, tcell.StyleDefault.Foreground(toColor(clr)))
}

// toColor drops alpha: a cell has no background to blend with.
func toColor(c color.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return tcell.ColorDefault
	}
	un := func(v uint32) int32 { return int32(v * 0xffff / a >> 8) }
	return tcell.NewRGBColor(un(r), un(g), un(b))
}
