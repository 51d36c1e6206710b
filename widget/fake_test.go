package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

// fakeView is a content widget with a fixed minimum size that records calls
type fakeView struct {
	min       geom.Vec2
	focusable bool
	consumes  bool

	requests  []SizeRequest
	laidOut   geom.Vec2
	drawSize  geom.Vec2
	drawFocus bool
	keys      int
}

func (f *fakeView) Draw(s Surface, focused bool) {
	f.drawSize = s.Size()
	f.drawFocus = focused
}

func (f *fakeView) MinSize(req SizeRequest) geom.Vec2 {
	f.requests = append(f.requests, req)
	return f.min
}

func (f *fakeView) Layout(size geom.Vec2) {
	f.laidOut = size
}

func (f *fakeView) HandleKey(terminal.Event) EventResult {
	f.keys++
	if f.consumes {
		return Consumed(nil)
	}
	return Ignored()
}

func (f *fakeView) TakeFocus() bool {
	return f.focusable
}

// fakeApp records what callbacks do to it
type fakeApp struct {
	added  []Widget
	popped int
	quit   int
}

func (a *fakeApp) AddLayer(w Widget) { a.added = append(a.added, w) }
func (a *fakeApp) PopLayer()         { a.popped++ }
func (a *fakeApp) Quit()             { a.quit++ }

// canvas is a cell buffer with a printer over its full area
type canvas struct {
	region tui.Region
	theme  tui.Theme
}

func newCanvas(w, h int) *canvas {
	cells := make([]terminal.Cell, w*h)
	return &canvas{
		region: tui.NewRegion(cells, w, 0, 0, w, h),
		theme:  tui.DefaultTheme,
	}
}

func (c *canvas) printer() Printer {
	return NewPrinter(c.region, c.theme)
}

// row returns line y as a string, unset cells as spaces
func (c *canvas) row(y int) string {
	runes := make([]rune, 0, c.region.W)
	for x := 0; x < c.region.W; x++ {
		r := c.region.At(x, y).Rune
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
	}
	return string(runes)
}

func key(k terminal.Key) terminal.Event {
	return terminal.KeyEvent(k)
}
