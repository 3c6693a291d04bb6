package viz

import "strings"

// Braille patterns give a 2x4 sub-pixel grid per terminal cell.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot canvas. Sub-pixel resolution is Width*2 by
// Height*4.
type Canvas struct {
	Width, Height int
	grid          []rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([]rune, w*h)}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		c.grid[i] = 0x2800
	}
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are
// silently dropped; the simulation extends past any viewport.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row*c.Width+col] |= pixelMap[y%4][x%2]
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width*3 + 1))
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			b.WriteRune(c.grid[row*c.Width+col])
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
