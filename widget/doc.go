// Package widget defines the retained widget contract and the widgets built on it.
//
// Every widget takes part in three protocols driven by its parent:
//
//	size := w.MinSize(req)   // 1. negotiate: smallest acceptable size under req
//	w.Layout(size)           // 2. commit: the exact size the widget will be drawn at
//	w.Draw(surface, focused) // 3. render into a surface clipped to that size
//
// Keyboard input flows down the focused path through HandleKey. A widget that
// has no use for a key returns Ignored so an ancestor can reinterpret it, e.g.
// as a focus move between siblings.
//
// Dialog is the composite that ties these together: content, a right-aligned
// button row, a border and a title.
package widget
