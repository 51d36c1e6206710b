package widget

import (
	"strings"

	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

// TextView displays static, word-wrapped text
// It only accepts focus when laid out shorter than its text, and then scrolls
type TextView struct {
	content string
	keys    Keymap

	// Set by Layout
	lines     []string
	size      geom.Vec2
	scrollbar bool
	scroll    tui.ScrollState
}

// NewTextView creates a text view with the default keymap
func NewTextView(content string) *TextView {
	return &TextView{content: content, keys: DefaultKeymap()}
}

// Keys sets the keymap used for scrolling
func (v *TextView) Keys(km Keymap) *TextView {
	v.keys = km
	return v
}

// SetContent replaces the text; takes effect at next Layout
func (v *TextView) SetContent(content string) {
	v.content = content
	v.scroll.Offset = 0
}

// Content returns the text
func (v *TextView) Content() string {
	return v.content
}

// Offset returns the index of the first visible line
func (v *TextView) Offset() int {
	return v.scroll.Offset
}

// MinSize wraps to a bounded width request, otherwise uses the natural line widths
func (v *TextView) MinSize(req SizeRequest) geom.Vec2 {
	var lines []string
	if w, ok := req.W.Limit(); ok && w > 0 {
		lines = tui.WrapText(v.content, w)
	} else {
		lines = strings.Split(v.content, "\n")
	}
	return geom.Vec2{X: maxWidth(lines), Y: len(lines)}
}

// Layout wraps the text to size.X, keeping a column for the scrollbar if needed
func (v *TextView) Layout(size geom.Vec2) {
	v.size = size
	v.scrollbar = false
	v.lines = tui.WrapText(v.content, size.X)
	if len(v.lines) > size.Y && size.X > 1 {
		v.lines = tui.WrapText(v.content, size.X-1)
		v.scrollbar = true
	}
	v.scroll.Resize(len(v.lines), size.Y)
}

// Draw prints the visible lines and, when scrollable, a scrollbar in the last column
func (v *TextView) Draw(s Surface, focused bool) {
	offset := v.scroll.Offset
	for y := 0; y < v.size.Y && offset+y < len(v.lines); y++ {
		s.Print(geom.Vec2{Y: y}, v.lines[offset+y])
	}
	if !v.scrollbar || v.size.Y == 0 {
		return
	}

	thumb := tui.EmphasisSecondary
	if focused {
		thumb = tui.EmphasisHighlight
	}
	s.ScrollBar(v.size.X-1, offset, v.size.Y, len(v.lines), thumb)
}

// HandleKey scrolls on up/down and page keys until an end is reached
func (v *TextView) HandleKey(ev terminal.Event) EventResult {
	if !v.scroll.Scrollable() {
		return Ignored()
	}

	var moved bool
	switch v.keys.Move(ev) {
	case MoveUp:
		moved = v.scroll.ScrollBy(-1)
	case MoveDown:
		moved = v.scroll.ScrollBy(1)
	default:
		if ev.Type != terminal.EventKey {
			break
		}
		switch ev.Key {
		case terminal.KeyPageUp:
			moved = v.scroll.PageUp()
		case terminal.KeyPageDown:
			moved = v.scroll.PageDown()
		}
	}
	if moved {
		return Consumed(nil)
	}
	return Ignored()
}

// TakeFocus succeeds only when there is something to scroll
func (v *TextView) TakeFocus() bool {
	return v.scroll.Scrollable()
}

func maxWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, tui.Width(line))
	}
	return w
}
