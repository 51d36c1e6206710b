package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

// Surface is the clipped, translated drawing context handed to a widget
// Writes outside the surface's size are discarded
type Surface interface {
	// Size returns the drawable area in cells
	Size() geom.Vec2

	// Print writes text starting at pos in the current style
	Print(pos geom.Vec2, text string)

	// PrintBox draws a border box with its top-left corner at topLeft
	PrintBox(topLeft, size geom.Vec2)

	// WithEmphasis runs fn with a surface whose current style is e
	WithEmphasis(e tui.Emphasis, fn func(s Surface))

	// Sub returns a surface translated to offset and clipped to size
	Sub(offset, size geom.Vec2) Surface

	// Junctions returns the glyphs that set a label into a horizontal border
	Junctions() (open, close rune)

	// ScrollBar draws a full-height track in column x with the thumb for
	// visible of total lines from offset drawn in emphasis thumb
	ScrollBar(x, offset, visible, total int, thumb tui.Emphasis)
}

// Printer implements Surface over a tui.Region
type Printer struct {
	region   tui.Region
	theme    tui.Theme
	style    tui.Style
	inactive bool
}

// NewPrinter creates a printer drawing into r with the theme's normal style
func NewPrinter(r tui.Region, theme tui.Theme) Printer {
	return Printer{region: r, theme: theme, style: theme.Style(tui.EmphasisNormal)}
}

// Size returns the drawable area in cells
func (p Printer) Size() geom.Vec2 {
	return geom.Vec2{X: p.region.W, Y: p.region.H}
}

// Print writes text starting at pos in the current style
func (p Printer) Print(pos geom.Vec2, text string) {
	p.region.Text(pos.X, pos.Y, text, p.style)
}

// PrintBox draws a border box in the theme's line style
func (p Printer) PrintBox(topLeft, size geom.Vec2) {
	p.region.Sub(topLeft.X, topLeft.Y, size.X, size.Y).Box(p.theme.Line, p.theme.Style(tui.EmphasisBorder))
}

// Background returns a printer for a layer below the top one
// Highlights drawn through it use the theme's inactive highlight
func (p Printer) Background() Printer {
	p.inactive = true
	return p
}

// WithEmphasis runs fn with a copy of the printer using style e
func (p Printer) WithEmphasis(e tui.Emphasis, fn func(s Surface)) {
	p.style = p.emphasis(e)
	fn(p)
}

// ScrollBar draws the track in the secondary style and the thumb in thumb
func (p Printer) ScrollBar(x, offset, visible, total int, thumb tui.Emphasis) {
	p.region.ScrollBar(x, offset, visible, total, p.emphasis(tui.EmphasisSecondary), p.emphasis(thumb))
}

func (p Printer) emphasis(e tui.Emphasis) tui.Style {
	if p.inactive && e == tui.EmphasisHighlight {
		e = tui.EmphasisHighlightInactive
	}
	return p.theme.Style(e)
}

// Sub returns a printer translated to offset and clipped to size
func (p Printer) Sub(offset, size geom.Vec2) Surface {
	p.region = p.region.Sub(offset.X, offset.Y, size.X, size.Y)
	return p
}

// Junctions returns the theme's label junction glyphs
func (p Printer) Junctions() (open, close rune) {
	return p.theme.Line.Junctions()
}

// Clear fills the printer's area with the theme background
func (p Printer) Clear() {
	p.region.Fill(p.theme.Bg)
}
