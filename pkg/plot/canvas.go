// ABOUTME: Braille dot canvas with per-dot series tags and Bresenham line drawing
// ABOUTME: Packs each 2x4 dot block into one braille rune with a dominant tag for coloring

package plot

// brailleBase is the first codepoint of the Unicode braille block. Each of
// the eight dots in a 2x4 cell contributes one bit above this base.
const brailleBase = 0x2800

// dotBits maps (y%4, x%2) to the braille bit for that dot position.
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// noTag marks a dot (or cell) that has never been written.
const noTag = -1

// canvas is a fixed-size dot grid. Dot coordinates are braille sub-cell
// units: pixelW = cols*2, pixelH = rows*4. Dots outside the grid are
// clipped silently because projections may round one unit past an edge.
type canvas struct {
	cols, rows     int
	pixelW, pixelH int
	on             []bool
	tags           []int
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{
		cols:   cols,
		rows:   rows,
		pixelW: cols * 2,
		pixelH: rows * 4,
	}
	n := c.pixelW * c.pixelH
	c.on = make([]bool, n)
	c.tags = make([]int, n)
	for i := range c.tags {
		c.tags[i] = noTag
	}
	return c
}

// set marks the dot at (x, y) with the given tag. Out-of-range writes are
// a no-op. A colliding write overwrites the previous tag (last writer wins).
func (c *canvas) set(x, y, tag int) {
	if x < 0 || x >= c.pixelW || y < 0 || y >= c.pixelH {
		return
	}
	i := y*c.pixelW + x
	c.on[i] = true
	c.tags[i] = tag
}

// get reports whether the dot at (x, y) is set. Out-of-range reads are false.
func (c *canvas) get(x, y int) bool {
	if x < 0 || x >= c.pixelW || y < 0 || y >= c.pixelH {
		return false
	}
	return c.on[y*c.pixelW+x]
}

// line draws the rasterized segment from (x0, y0) to (x1, y1) using the
// integer error-accumulator form of Bresenham's algorithm: one dot per unit
// step along the dominant axis, the minor axis advancing when the
// accumulated error crosses half a step. Gap-free for every slope.
func (c *canvas) line(x0, y0, x1, y1, tag int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, tag)
		if x0 == x1 && y0 == y1 {
			return
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

// cell is one rendered character cell: a braille rune (or space when no dot
// in the block is set) plus the block's dominant tag, noTag when empty.
type cell struct {
	glyph rune
	tag   int
}

// cells packs the dot grid into rows x cols character cells. Each cell ORs
// its 2x4 block of dots into one braille rune and carries the most frequent
// tag among the set dots; frequency ties go to the higher palette slot.
func (c *canvas) cells() [][]cell {
	out := make([][]cell, c.rows)
	for row := 0; row < c.rows; row++ {
		line := make([]cell, c.cols)
		for col := 0; col < c.cols; col++ {
			line[col] = c.packBlock(col, row)
		}
		out[row] = line
	}
	return out
}

// packBlock folds the 2x4 dot block at character cell (col, row) into a cell.
func (c *canvas) packBlock(col, row int) cell {
	var bits rune
	// At most 8 dots per block, so a flat tally beats a map here.
	var tally []struct {
		tag   int
		count int
	}
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			x := col*2 + dx
			y := row*4 + dy
			if !c.get(x, y) {
				continue
			}
			bits |= dotBits[dy][dx]
			tag := c.tags[y*c.pixelW+x]
			found := false
			for i := range tally {
				if tally[i].tag == tag {
					tally[i].count++
					found = true
					break
				}
			}
			if !found {
				tally = append(tally, struct {
					tag   int
					count int
				}{tag, 1})
			}
		}
	}
	if bits == 0 {
		return cell{glyph: ' ', tag: noTag}
	}
	best := tally[0]
	for _, t := range tally[1:] {
		if t.count > best.count || (t.count == best.count && t.tag > best.tag) {
			best = t
		}
	}
	return cell{glyph: brailleBase + bits, tag: best.tag}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
