package main

import "strings"

// Size is a width/height extent in cells.
type Size struct {
	Width  int
	Height int
}

// pageOf returns the index of the page containing pos along one axis.
func pageOf(pos, extent int) int {
	if extent <= 0 {
		extent = 1
	}
	if pos < 0 {
		return 0
	}
	return pos / extent
}

// recomputeOrigin returns the top-left logical cell of the page containing p.
// The result is always a multiple of the extent on both axes.
func recomputeOrigin(p Pos, e Size) Pos {
	return Pos{
		Row: pageOf(p.Row, e.Height) * max(e.Height, 1),
		Col: pageOf(p.Col, e.Width) * max(e.Width, 1),
	}
}

// Viewport paints one page of the document at a time. The page is chosen by
// the logical cursor; the area excludes the margins.
type Viewport struct {
	term    Terminal
	margins Margins
	size    Size // whole terminal
	orig    Pos
}

func newViewport(term Terminal, margins Margins) *Viewport {
	v := &Viewport{term: term, margins: margins}
	v.resize(term.Size())
	return v
}

func (v *Viewport) resize(cols, rows int) {
	v.size = Size{Width: cols, Height: rows}
}

// extent is the drawable text area: the terminal minus chrome, at least one
// cell on each axis.
func (v *Viewport) extent() Size {
	return Size{
		Width:  max(v.size.Width-v.margins.Left, 1),
		Height: max(v.size.Height-v.margins.Top, 1),
	}
}

func (v *Viewport) origin() Pos {
	return v.orig
}

// page returns the page coordinates of p under the current extent.
func (v *Viewport) page(p Pos) (row, col int) {
	e := v.extent()
	return pageOf(p.Row, e.Height), pageOf(p.Col, e.Width)
}

func (v *Viewport) gutter() string {
	if v.margins.Left <= 0 {
		return ""
	}
	return "~" + strings.Repeat(" ", v.margins.Left-1)
}

// render repaints the whole window: status row, gutter and the visible slice
// of buf. The terminal cursor is put back on the edit cursor afterwards.
func (v *Viewport) render(buf *LineBuffer, cur *ViewCursor, status string) {
	extent := v.extent()
	v.orig = recomputeOrigin(cur.logicalPos(), extent)

	v.term.Clear()
	if v.margins.Top > 0 {
		v.term.MoveCursor(0, 0)
		v.term.Write(status)
	}

	gutter := v.gutter()
	for i, row := range buf.renderSlice(v.orig, extent) {
		v.term.MoveCursor(0, v.margins.Top+i)
		v.term.Write(gutter)
		v.term.Write(row)
	}

	cur.set()
	v.term.Flush()
}
