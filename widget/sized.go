package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
)

// SizedView wraps a widget and remembers the size it was last laid out at
type SizedView[W Widget] struct {
	View W
	Size geom.Vec2
}

// NewSizedView wraps v with an empty cached size
func NewSizedView[W Widget](v W) *SizedView[W] {
	return &SizedView[W]{View: v}
}

func (s *SizedView[W]) Draw(sf Surface, focused bool) {
	s.View.Draw(sf, focused)
}

func (s *SizedView[W]) MinSize(req SizeRequest) geom.Vec2 {
	return s.View.MinSize(req)
}

// Layout caches size and forwards it
func (s *SizedView[W]) Layout(size geom.Vec2) {
	s.Size = size
	s.View.Layout(size)
}

func (s *SizedView[W]) HandleKey(ev terminal.Event) EventResult {
	return s.View.HandleKey(ev)
}

func (s *SizedView[W]) TakeFocus() bool {
	return s.View.TakeFocus()
}
