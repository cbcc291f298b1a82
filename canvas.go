package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"affinelab/internal/geom"
)

// layer decides which style a braille cell gets when several shapes touch
// it. Higher layers win.
type layer uint8

const (
	layerNone layer = iota
	layerGrid
	layerAxes
	layerOriginalFill
	layerCurrentFill
	layerOriginalEdge
	layerCurrentEdge
)

// Canvas rasterises the 800×600 world onto terminal cells using braille
// dots, 2 wide and 4 tall per cell.
type Canvas struct {
	cols, rows int
	mask       [][]uint8
	top        [][]layer

	scale      float64
	offX, offY float64
}

func NewCanvas(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{
		cols: cols,
		rows: rows,
		mask: make([][]uint8, rows),
		top:  make([][]layer, rows),
	}
	for i := range c.mask {
		c.mask[i] = make([]uint8, cols)
		c.top[i] = make([]layer, cols)
	}

	mw, mh := float64(cols*2), float64(rows*4)
	c.scale = math.Min(mw/worldWidth, mh/worldHeight)
	c.offX = (mw - worldWidth*c.scale) / 2
	c.offY = (mh - worldHeight*c.scale) / 2
	return c
}

func (c *Canvas) toMicroF(p geom.Point) (float64, float64) {
	return p.X*c.scale + c.offX, p.Y*c.scale + c.offY
}

func (c *Canvas) toWorld(mx, my float64) geom.Point {
	return geom.Point{X: (mx - c.offX) / c.scale, Y: (my - c.offY) / c.scale}
}

// braille dot bits, indexed [row][col] within a cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func (c *Canvas) set(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.cols || cy >= c.rows {
		return
	}
	c.mask[cy][cx] |= brailleBits[my%4][mx%2]
	if l > c.top[cy][cx] {
		c.top[cy][cx] = l
	}
}

// line draws a Bresenham line between two world points, clipped to the
// canvas first. With dotted set, only every other dot is lit.
func (c *Canvas) line(a, b geom.Point, l layer, dotted bool) {
	ax, ay := c.toMicroF(a)
	bx, by := c.toMicroF(b)
	ax, ay, bx, by, ok := clipSegment(ax, ay, bx, by, -1, -1, float64(c.cols*2), float64(c.rows*4))
	if !ok {
		return
	}
	x0, y0 := int(math.Round(ax)), int(math.Round(ay))
	x1, y1 := int(math.Round(bx)), int(math.Round(by))

	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for i := 0; ; i++ {
		if !dotted || i%2 == 0 {
			c.set(x0, y0, l)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) outline(p geom.Polygon, l layer) {
	for i := range p {
		c.line(p[i], p[(i+1)%len(p)], l, false)
	}
}

// fill lights every dot whose centre falls inside p.
func (c *Canvas) fill(p geom.Polygon, l layer) {
	if len(p) < 3 || c.scale == 0 {
		return
	}
	lo, hi := p.Bounds()
	lx, ly := c.toMicroF(lo)
	hx, hy := c.toMicroF(hi)
	mw, mh := float64(c.cols*2-1), float64(c.rows*4-1)
	if hx < 0 || hy < 0 || lx > mw || ly > mh {
		return
	}
	x0, y0 := int(math.Max(lx-1, 0)), int(math.Max(ly-1, 0))
	x1, y1 := int(math.Min(hx+1, mw)), int(math.Min(hy+1, mh))

	for my := y0; my <= y1; my++ {
		for mx := x0; mx <= x1; mx++ {
			if p.Contains(c.toWorld(float64(mx)+0.5, float64(my)+0.5)) {
				c.set(mx, my, l)
			}
		}
	}
}

// DrawScene renders the grid, axes and both polygons.
func (c *Canvas) DrawScene(original, current geom.Polygon) {
	if c.scale == 0 {
		return
	}
	for x := 0.0; x < worldWidth; x += gridStep {
		c.line(geom.Point{X: x}, geom.Point{X: x, Y: worldHeight}, layerGrid, true)
	}
	for y := 0.0; y < worldHeight; y += gridStep {
		c.line(geom.Point{Y: y}, geom.Point{X: worldWidth, Y: y}, layerGrid, true)
	}
	c.line(geom.Point{X: worldWidth / 2}, geom.Point{X: worldWidth / 2, Y: worldHeight}, layerAxes, false)
	c.line(geom.Point{Y: worldHeight / 2}, geom.Point{X: worldWidth, Y: worldHeight / 2}, layerAxes, false)

	c.fill(original, layerOriginalFill)
	c.fill(current, layerCurrentFill)
	c.outline(original, layerOriginalEdge)
	c.outline(current, layerCurrentEdge)
}

// Render returns one string per row, styling each run of cells by its top
// layer.
func (c *Canvas) Render(styles map[layer]lipgloss.Style) []string {
	out := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var b strings.Builder
		var run []rune
		runLayer := layerNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := styles[runLayer]; ok && runLayer != layerNone {
				b.WriteString(st.Render(string(run)))
			} else {
				b.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < c.cols; x++ {
			l := c.top[y][x]
			r := ' '
			if m := c.mask[y][x]; m != 0 {
				r = rune(0x2800 + int(m))
			}
			if l != runLayer {
				flush()
				runLayer = l
			}
			run = append(run, r)
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// Plain returns the canvas rows without styling.
func (c *Canvas) Plain() []string {
	return c.Render(nil)
}

// clipSegment clips the segment (x0,y0)-(x1,y1) to the rectangle
// [minX,maxX]×[minY,maxY] (Liang–Barsky). ok is false when nothing of the
// segment lies inside.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
