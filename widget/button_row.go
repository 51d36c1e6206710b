package widget

import "github.com/lixenwraith/tuikit/geom"

// buttonRow is a dialog footer: buttons packed against the bottom-right
// inner corner with one blank cell between them and one blank row above
type buttonRow []*SizedView[*Button]

// minSize is wide enough for every button plus one separator each
// Buttons are measured at the caller's request, not a reduced one
func (r buttonRow) minSize(req SizeRequest) geom.Vec2 {
	var size geom.Vec2
	for _, b := range r {
		s := b.MinSize(req)
		size.X += s.X + 1
		size.Y = max(size.Y, s.Y+1)
	}
	return size
}

// layout gives every button its minimum size under req and returns the row height
func (r buttonRow) layout(req SizeRequest) int {
	height := 0
	for i := len(r) - 1; i >= 0; i-- {
		size := r[i].MinSize(req)
		height = max(height, size.Y+1)
		r[i].Layout(size)
	}
	return height
}

// draw places the buttons right to left, inset from the surface's bottom-right
// corner, and returns the row height. focused reports whether button i gets emphasis
func (r buttonRow) draw(s Surface, inset geom.Vec2, focused func(i int) bool) int {
	height := 0
	x := 0
	for i := len(r) - 1; i >= 0; i-- {
		b := r[i]
		offset := s.Size().Sub(inset).Sub(b.Size).Sub(geom.Vec2{X: x})
		b.Draw(s.Sub(offset, b.Size), focused(i))
		// Keep 1 blank between two buttons
		x += b.Size.X + 1
		// and 1 blank above them
		height = max(height, b.Size.Y+1)
	}
	return height
}
