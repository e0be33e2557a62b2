package main

import "math"

// maxCoord caps logical coordinates. The document may be much smaller.
const maxCoord = math.MaxInt32

// Pos is a logical (document) position.
type Pos struct {
	Row int
	Col int
}

// Point is a screen position in terminal cells.
type Point struct {
	X int
	Y int
}

// Margins is the chrome reserved on the left (gutter) and top (status row).
type Margins struct {
	Left int
	Top  int
}

type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// ViewCursor keeps the logical and screen cursors in lockstep. The logical
// position is the source of truth for buffer addressing; the screen position
// is always margins + logical mod extent.
type ViewCursor struct {
	term    Terminal
	margins Margins
	extent  Size

	logical Pos
	screen  Point
}

func newViewCursor(term Terminal, margins Margins, extent Size) *ViewCursor {
	c := &ViewCursor{
		term:    term,
		margins: margins,
		extent:  extent,
	}
	c.screen = c.derive(c.logical)
	return c
}

func (c *ViewCursor) logicalPos() Pos { return c.logical }
func (c *ViewCursor) screenPos() Point { return c.screen }

// derive maps a logical position onto the screen cell it occupies within its
// page. Crossing a page edge wraps to the opposite edge of the page.
func (c *ViewCursor) derive(p Pos) Point {
	w := max(c.extent.Width, 1)
	h := max(c.extent.Height, 1)
	return Point{
		X: c.margins.Left + p.Col%w,
		Y: c.margins.Top + p.Row%h,
	}
}

func (c *ViewCursor) move(dir Direction) {
	switch dir {
	case DirLeft:
		if c.logical.Col > 0 {
			c.logical.Col--
		}
	case DirRight:
		if c.logical.Col < maxCoord {
			c.logical.Col++
		}
	case DirUp:
		if c.logical.Row > 0 {
			c.logical.Row--
		}
	case DirDown:
		if c.logical.Row < maxCoord {
			c.logical.Row++
		}
	}
	c.screen = c.derive(c.logical)
	c.set()
}

func (c *ViewCursor) moveLeft() { c.move(DirLeft) }
func (c *ViewCursor) moveRight() { c.move(DirRight) }
func (c *ViewCursor) moveUp() { c.move(DirUp) }
func (c *ViewCursor) moveDown() { c.move(DirDown) }

// moveTo jumps to p, clamped into [0, maxCoord] on both axes.
func (c *ViewCursor) moveTo(p Pos) {
	c.logical = Pos{
		Row: min(max(p.Row, 0), maxCoord),
		Col: min(max(p.Col, 0), maxCoord),
	}
	c.screen = c.derive(c.logical)
	c.set()
}

func (c *ViewCursor) reset() {
	c.logical = Pos{}
	c.screen = Point{X: c.margins.Left, Y: c.margins.Top}
	c.set()
}

// resize adopts a new page extent. The logical position is kept, so the
// screen position is re-derived and may land on a different page.
func (c *ViewCursor) resize(extent Size) {
	c.extent = extent
	c.screen = c.derive(c.logical)
}

// set places the terminal's cursor glyph on the screen position.
func (c *ViewCursor) set() {
	c.term.MoveCursor(c.screen.X, c.screen.Y)
}
