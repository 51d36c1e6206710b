// Package geom holds the integer cell geometry shared by widgets: sizes,
// offsets and edge margins. All arithmetic saturates at zero so layout code
// can subtract decorations from an undersized region without going negative
package geom

// Vec2 is a size or an offset in terminal cells
type Vec2 struct {
	X, Y int
}

// Zero is the empty vector
var Zero = Vec2{}

// NewVec2 creates a vector, clamping negative components to zero
func NewVec2(x, y int) Vec2 {
	return Vec2{X: max(x, 0), Y: max(y, 0)}
}

// Add returns the componentwise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference, clamped at zero per axis
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: max(v.X-o.X, 0), Y: max(v.Y-o.Y, 0)}
}

// Max returns the componentwise maximum
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Min returns the componentwise minimum
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Fits reports whether v is no larger than o on both axes
func (v Vec2) Fits(o Vec2) bool {
	return v.X <= o.X && v.Y <= o.Y
}
