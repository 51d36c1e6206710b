package tui

import (
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/mattn/go-runewidth"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Set writes a single cell with bounds checking
func (r Region) Set(x, y int, ch rune, st Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	// Bounds check against the physical buffer dimensions
	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	if uint(idx) < uint(len(r.Cells)) {
		r.Cells[idx] = terminal.Cell{Rune: ch, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attr}
	}
}

// Put writes a rune and returns the number of columns it occupies
// A wide rune that does not fit before the right edge is replaced by a space
func (r Region) Put(x, y int, ch rune, st Style) int {
	w := runewidth.RuneWidth(ch)
	switch {
	case w == 0:
		return 0
	case w == 2 && x+1 >= r.W:
		r.Set(x, y, ' ', st)
		return 1
	}
	r.Set(x, y, ch, st)
	if w == 2 {
		r.Set(x+1, y, 0, st)
	}
	return w
}

// At returns the cell at region coordinates, zero cell when out of bounds
func (r Region) At(x, y int) terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return terminal.Cell{}
	}
	idx := (r.Y+y)*r.TotalW + r.X + x
	if uint(idx) >= uint(len(r.Cells)) {
		return terminal.Cell{}
	}
	return r.Cells[idx]
}

// Fill fills entire region with background color
func (r Region) Fill(bg terminal.RGB) {
	st := Style{Bg: bg}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Set(x, y, ' ', st)
		}
	}
}

// Clear fills region with spaces and zero colors
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// Bounds returns absolute position and dimensions
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}
