package geom

// Margins are four independent edge widths, used for borders and padding
type Margins struct {
	Left, Right, Top, Bottom int
}

// NewMargins creates margins, clamping negative widths to zero
func NewMargins(left, right, top, bottom int) Margins {
	return Margins{
		Left:   max(left, 0),
		Right:  max(right, 0),
		Top:    max(top, 0),
		Bottom: max(bottom, 0),
	}
}

// Uniform creates margins with the same width on every edge
func Uniform(n int) Margins {
	return NewMargins(n, n, n, n)
}

// Combined returns the total horizontal and vertical space taken
func (m Margins) Combined() Vec2 {
	return Vec2{X: m.Left + m.Right, Y: m.Top + m.Bottom}
}

// TopLeft returns the offset of the inner area from the outer top-left corner
func (m Margins) TopLeft() Vec2 {
	return Vec2{X: m.Left, Y: m.Top}
}

// BotRight returns the space reserved after the inner area on each axis
func (m Margins) BotRight() Vec2 {
	return Vec2{X: m.Right, Y: m.Bottom}
}

// Add stacks two margins edge by edge
func (m Margins) Add(o Margins) Margins {
	return Margins{
		Left:   m.Left + o.Left,
		Right:  m.Right + o.Right,
		Top:    m.Top + o.Top,
		Bottom: m.Bottom + o.Bottom,
	}
}
