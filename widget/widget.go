package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
)

// Widget is the contract every displayable element implements
type Widget interface {
	// Draw renders into s, which is already translated and clipped to the
	// widget's allotted region. focused requests focus emphasis
	Draw(s Surface, focused bool)

	// MinSize returns the smallest size the widget renders acceptably at under req
	// Must not mutate layout state
	MinSize(req SizeRequest) geom.Vec2

	// Layout informs the widget of the exact size it will be drawn at
	Layout(size geom.Vec2)

	// HandleKey interprets a key, returning Ignored if it has no meaning here
	HandleKey(ev terminal.Event) EventResult

	// TakeFocus asks the widget to accept focus from outside
	TakeFocus() bool
}

// Application is the handle button callbacks act on
type Application interface {
	// AddLayer pushes a widget on top of the screen stack and focuses it
	AddLayer(w Widget)

	// PopLayer removes the top-level layer
	PopLayer()

	// Quit stops the event loop
	Quit()
}

// Callback is a follow-up action run by the event loop after a key is consumed
type Callback func(app Application)

// EventResult is the outcome of HandleKey
type EventResult struct {
	consumed bool
	callback Callback
}

// Ignored reports that the key had no meaning for the widget
func Ignored() EventResult {
	return EventResult{}
}

// Consumed reports that the key was handled, with an optional follow-up
func Consumed(cb Callback) EventResult {
	return EventResult{consumed: true, callback: cb}
}

// IsConsumed reports whether the key was handled
func (r EventResult) IsConsumed() bool {
	return r.consumed
}

// Callback returns the follow-up action, nil if none
func (r EventResult) Callback() Callback {
	return r.callback
}
