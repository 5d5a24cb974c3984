package tui

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

// canvas is a pixel buffer with two pixels per terminal cell vertically.
// Shapes are given in world units and projected onto it.
type canvas struct {
	w, h   int
	px     []core.Color
	sx, sy float64 // Pixels per world unit
}

// reset sizes the canvas for a screen of cols x rows cells showing world.
func (c *canvas) reset(cols, rows int, world runner.WorldSize) {
	c.w, c.h = max(cols, 0), max(rows*2, 0)
	if n := c.w * c.h; cap(c.px) < n {
		c.px = make([]core.Color, n)
	} else {
		c.px = c.px[:n]
	}
	c.sx, c.sy = 0, 0
	if world.Width > 0 && world.Height > 0 {
		c.sx = float64(c.w) / world.Width
		c.sy = float64(c.h) / world.Height
	}
}

func (c *canvas) set(x, y int, col core.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.px[y*c.w+x] = col
}

func (c *canvas) at(x, y int) core.Color {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return core.Color{}
	}
	return c.px[y*c.w+x]
}

// span projects a world rectangle to a clipped pixel range [x0,x1) x [y0,y1).
// A shape with positive size covers at least one pixel.
func (c *canvas) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(x * c.sx))
	y0 = int(math.Floor(y * c.sy))
	x1 = int(math.Ceil((x + w) * c.sx))
	y1 = int(math.Ceil((y + h) * c.sy))
	if w > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if h > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.Clamp(x0, 0, c.w), core.Clamp(y0, 0, c.h), core.Clamp(x1, 0, c.w), core.Clamp(y1, 0, c.h)
}

// rect fills a world rectangle.
func (c *canvas) rect(x, y, w, h float64, col core.Color) {
	x0, y0, x1, y1 := c.span(x, y, w, h)
	for py := y0; py < y1; py++ {
		row := c.px[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// blend mixes col over a world rectangle with opacity a.
func (c *canvas) blend(x, y, w, h float64, col core.Color, a float64) {
	a = core.ClampF(a, 0, 1)
	x0, y0, x1, y1 := c.span(x, y, w, h)
	for py := y0; py < y1; py++ {
		row := c.px[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			row[px] = row[px].Lerp(col, a)
		}
	}
}

// gradient fills a full-width world band, blending from top to bottom.
func (c *canvas) gradient(y, h float64, top, bottom core.Color) {
	_, y0, _, y1 := c.span(0, y, 0, h)
	n := y1 - y0
	for py := y0; py < y1; py++ {
		t := 0.0
		if n > 1 {
			t = float64(py-y0) / float64(n-1)
		}
		col := top.Lerp(bottom, t)
		row := c.px[py*c.w : (py+1)*c.w]
		for px := range row {
			row[px] = col
		}
	}
}

// dim darkens the whole canvas, used behind menus.
func (c *canvas) dim(f float64) {
	for i := range c.px {
		c.px[i] = c.px[i].Scale(f)
	}
}

// compose writes the canvas into scr as half-block cells.
func (c *canvas) compose(scr *core.Screen) {
	rows := min(scr.Height(), c.h/2)
	cols := min(scr.Width(), c.w)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			scr.SetCell(cx, cy, halfBlock, c.at(cx, cy*2), c.at(cx, cy*2+1))
		}
	}
}
