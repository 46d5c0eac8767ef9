package wavefield

import (
	"math"
	"strings"
)

// BrailleCanvas is a Surface backed by Unicode braille cells. Each cell is a
// 2x4 dot grid, so a canvas of w x h pixels covers ceil(w/2) x ceil(h/4) cells.
type BrailleCanvas struct {
	width  int
	height int
	cols   int
	rows   int
	cells  []uint8
}

// Braille dot positions (col, row) -> bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// NewBrailleCanvas creates a canvas of the given pixel size.
func NewBrailleCanvas(width, height int) *BrailleCanvas {
	c := &BrailleCanvas{}
	c.SetSize(width, height)
	return c
}

// SetSize resizes the canvas and clears it.
func (c *BrailleCanvas) SetSize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.cols = (c.width + 1) / 2
	c.rows = (c.height + 3) / 4
	if cap(c.cells) >= c.cols*c.rows {
		c.cells = c.cells[:c.cols*c.rows]
	} else {
		c.cells = make([]uint8, c.cols*c.rows)
	}
	c.Clear()
}

// Size returns the canvas size in pixels.
func (c *BrailleCanvas) Size() (width, height int) { return c.width, c.height }

// Cells returns the canvas size in terminal cells.
func (c *BrailleCanvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Clear erases every dot.
func (c *BrailleCanvas) Clear() {
	clear(c.cells)
}

// StrokePolyline draws straight segments between consecutive points.
// Anything outside the canvas is clipped.
func (c *BrailleCanvas) StrokePolyline(pts []Point) {
	if len(pts) == 0 {
		return
	}
	x0, y0 := roundPx(pts[0].X), roundPx(pts[0].Y)
	if len(pts) == 1 {
		c.set(x0, y0)
		return
	}
	for _, p := range pts[1:] {
		x1, y1 := roundPx(p.X), roundPx(p.Y)
		c.line(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

// Dot reports whether the pixel at (x, y) is set.
func (c *BrailleCanvas) Dot(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2]&(1<<brailleBits[x%2][y%4]) != 0
}

// Row renders one cell row. Empty cells are spaces so text can be laid over them.
func (c *BrailleCanvas) Row(r int) []rune {
	out := make([]rune, c.cols)
	if r < 0 || r >= c.rows {
		for i := range out {
			out[i] = ' '
		}
		return out
	}
	for col := range c.cols {
		pattern := c.cells[r*c.cols+col]
		if pattern == 0 {
			out[col] = ' '
			continue
		}
		out[col] = rune(0x2800 + int(pattern))
	}
	return out
}

func (c *BrailleCanvas) String() string {
	rows := make([]string, c.rows)
	for r := range c.rows {
		rows[r] = string(c.Row(r))
	}
	return strings.Join(rows, "\n")
}

func (c *BrailleCanvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= 1 << brailleBits[x%2][y%4]
}

// line is Bresenham between two pixels.
func (c *BrailleCanvas) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		c.set(x0, y0)
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

func roundPx(v float64) int {
	return int(math.Round(v))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
