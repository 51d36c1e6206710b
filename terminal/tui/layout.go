package tui

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(max(x, 0), max(y, 0), w, h)
}
