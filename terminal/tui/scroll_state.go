package tui

// ScrollState tracks the first visible line of a view over Total lines
type ScrollState struct {
	Offset  int // first visible line
	Total   int // line count
	Visible int // viewport height
}

// MaxOffset is the offset that shows the last line at the bottom
func (s *ScrollState) MaxOffset() int {
	return max(s.Total-s.Visible, 0)
}

// ScrollBy moves by delta lines, clamped; reports whether the offset changed
func (s *ScrollState) ScrollBy(delta int) bool {
	prev := s.Offset
	s.Offset += delta
	s.Clamp()
	return s.Offset != prev
}

// Clamp keeps the offset in [0, MaxOffset]
func (s *ScrollState) Clamp() {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset())
}

// PageUp scrolls up by half the viewport
func (s *ScrollState) PageUp() bool {
	return s.ScrollBy(-pageDelta(s.Visible))
}

// PageDown scrolls down by half the viewport
func (s *ScrollState) PageDown() bool {
	return s.ScrollBy(pageDelta(s.Visible))
}

// Resize updates both counts and reclamps
func (s *ScrollState) Resize(total, visible int) {
	s.Total = max(total, 0)
	s.Visible = max(visible, 0)
	s.Clamp()
}

// Scrollable reports whether some lines are out of view
func (s *ScrollState) Scrollable() bool {
	return s.Total > s.Visible
}

func pageDelta(visible int) int {
	return max(visible/2, 1)
}
