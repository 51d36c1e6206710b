package tui

import (
	"github.com/lixenwraith/tuikit/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   terminal.RGB
	Bg   terminal.RGB
	Attr terminal.Attr
}
