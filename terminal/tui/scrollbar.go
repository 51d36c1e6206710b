package tui

// ThumbSpan returns the scrollbar thumb position and height on a track of
// trackH cells showing visible of total lines from offset
// Returns (0, trackH) when everything fits
func ThumbSpan(offset, visible, total, trackH int) (y, h int) {
	if trackH <= 0 {
		return 0, 0
	}
	if total <= visible {
		return 0, trackH
	}

	h = min(max(visible*trackH/total, 1), trackH)

	maxScroll := total - visible
	y = offset * (trackH - h) / maxScroll
	y = min(max(y, 0), trackH-h)
	return y, h
}

// ScrollBar draws a vertical track with thumb in column x
func (r Region) ScrollBar(x, offset, visible, total int, track, thumb Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}
	thumbY, thumbH := ThumbSpan(offset, visible, total, r.H)
	for y := 0; y < r.H; y++ {
		if y >= thumbY && y < thumbY+thumbH {
			r.Set(x, y, ScrollThumb, thumb)
		} else {
			r.Set(x, y, ScrollTrack, track)
		}
	}
}

// Scrollbar glyphs
const (
	ScrollThumb = '█'
	ScrollTrack = '░'
)
