package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

// Button is a single-line "< label >" widget that runs a callback on Enter
type Button struct {
	label    string
	callback Callback
}

// NewButton creates a button; cb may be nil for a button that only consumes Enter
func NewButton(label string, cb Callback) *Button {
	return &Button{label: label, callback: cb}
}

// Label returns the button text
func (b *Button) Label() string {
	return b.label
}

// Draw renders the brackets and the label, highlighted when focused
func (b *Button) Draw(s Surface, focused bool) {
	size := s.Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	s.Print(geom.Vec2{}, "<")
	s.Print(geom.Vec2{X: size.X - 1}, ">")

	em := tui.EmphasisNormal
	if focused {
		em = tui.EmphasisHighlight
	}
	s.WithEmphasis(em, func(p Surface) {
		p.Print(geom.Vec2{X: 2}, b.label)
	})
}

// MinSize is the label plus "< " and " >", whatever the request
func (b *Button) MinSize(SizeRequest) geom.Vec2 {
	return geom.Vec2{X: tui.Width(b.label) + 4, Y: 1}
}

func (b *Button) Layout(geom.Vec2) {}

// HandleKey consumes Enter and hands the callback to the event loop
func (b *Button) HandleKey(ev terminal.Event) EventResult {
	if ev.Type == terminal.EventKey && ev.Key == terminal.KeyEnter {
		return Consumed(b.callback)
	}
	return Ignored()
}

// TakeFocus always succeeds
func (b *Button) TakeFocus() bool {
	return true
}
