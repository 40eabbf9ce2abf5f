package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells pack 2x4 sub-pixels:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const noColor = -1

// Canvas is a braille sub-pixel canvas with one color index per cell.
// Later writes to a cell take its color, so bodies drawn after trails
// keep their bright color where they overlap.
type Canvas struct {
	Width, Height int // cells
	cells         [][]rune
	colors        [][]int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.cells = make([][]rune, h)
	c.colors = make([][]int, h)
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
		c.colors[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// PxWidth and PxHeight are the sub-pixel dimensions.
func (c *Canvas) PxWidth() int  { return c.Width * 2 }
func (c *Canvas) PxHeight() int { return c.Height * 4 }

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = 0x2800
			c.colors[y][x] = noColor
		}
	}
}

// Set lights the sub-pixel at (x, y) with the given color index.
// Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= dotMask[y%4][x%2]
	c.colors[row][col] = color
}

// FillCircle lights all sub-pixels within radius r of (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r, color int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, color)
			}
		}
	}
}

// String renders the canvas, styling each cell by its color index
// into the given style palette.
func (c *Canvas) String(palette []lipgloss.Style) string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			ch := string(c.cells[y][x])
			idx := c.colors[y][x]
			if idx >= 0 && idx < len(palette) {
				ch = palette[idx].Render(ch)
			}
			b.WriteString(ch)
		}
		if y < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
