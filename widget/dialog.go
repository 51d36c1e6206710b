package widget

import (
	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
	"github.com/lixenwraith/tuikit/terminal/tui"
)

// Dialog is a popup-like widget: a content widget with an optional title,
// a border, inner padding and a row of buttons under the content
//
//	d := widget.New(widget.NewTextView("Hello!")).
//		Title("Greeting").
//		Button("Quit", func(app widget.Application) { app.Quit() }).
//		DismissButton("Close")
type Dialog struct {
	title   string
	content Widget
	buttons buttonRow

	padding geom.Margins
	borders geom.Margins

	focus Focus
	keys  Keymap
}

// New creates a dialog around content with one column of horizontal padding
// and a single-cell border
func New(content Widget) *Dialog {
	return &Dialog{
		content: content,
		padding: geom.NewMargins(1, 1, 0, 0),
		borders: geom.Uniform(1),
		focus:   FocusContent,
		keys:    DefaultKeymap(),
	}
}

// Button appends a button with the given label and callback
func (d *Dialog) Button(label string, cb Callback) *Dialog {
	d.buttons = append(d.buttons, NewSizedView(NewButton(label, cb)))
	return d
}

// DismissButton appends a button that pops the dialog's layer
func (d *Dialog) DismissButton(label string) *Dialog {
	return d.Button(label, func(app Application) { app.PopLayer() })
}

// Title sets the title drawn on the top border; empty hides it
func (d *Dialog) Title(text string) *Dialog {
	d.title = text
	return d
}

// Padding sets the space between the border and the children
func (d *Dialog) Padding(m geom.Margins) *Dialog {
	d.padding = m
	return d
}

// Borders sets the space taken by the border
func (d *Dialog) Borders(m geom.Margins) *Dialog {
	d.borders = m
	return d
}

// Keys sets the keymap used to move focus between children
func (d *Dialog) Keys(km Keymap) *Dialog {
	d.keys = km
	return d
}

// Focus returns which child holds focus
func (d *Dialog) Focus() Focus {
	return d.focus
}

// ButtonCount returns the number of buttons
func (d *Dialog) ButtonCount() int {
	return len(d.buttons)
}

// ButtonLabel returns the label of button i
func (d *Dialog) ButtonLabel(i int) string {
	return d.buttons[i].View.Label()
}

// Content returns the wrapped widget
func (d *Dialog) Content() Widget {
	return d.content
}

// TitleText returns the title
func (d *Dialog) TitleText() string {
	return d.title
}

// decorations is the space padding and borders take on each axis
func (d *Dialog) decorations() geom.Vec2 {
	return d.padding.Combined().Add(d.borders.Combined())
}

func (d *Dialog) Draw(s Surface, focused bool) {
	// Buttons first: the content gets whatever height they leave
	height := d.buttons.draw(s, d.borders.BotRight().Add(d.padding.BotRight()), func(i int) bool {
		return focused && d.focus == FocusButton(i)
	})

	inner := s.Size().Sub(geom.Vec2{Y: height}).Sub(d.decorations())
	origin := d.borders.TopLeft().Add(d.padding.TopLeft())
	d.content.Draw(s.Sub(origin, inner), focused && d.focus == FocusContent)

	s.PrintBox(geom.Zero, s.Size())

	if d.title != "" {
		d.drawTitle(s)
	}
}

// drawTitle centers the title on the top border between junction glyphs
// A title too wide for the border is shortened with an ellipsis
func (d *Dialog) drawTitle(s Surface) {
	// Corner, junction and space on each side
	title := tui.Truncate(d.title, s.Size().X-6)
	if title == "" {
		return
	}
	width := tui.Width(title)
	x := (s.Size().X - width) / 2
	open, closing := s.Junctions()

	s.WithEmphasis(tui.EmphasisBorder, func(p Surface) {
		p.Print(geom.Vec2{X: x - 2}, string([]rune{open, ' '}))
		p.Print(geom.Vec2{X: x + width}, string([]rune{' ', closing}))
	})
	s.WithEmphasis(tui.EmphasisTitle, func(p Surface) {
		p.Print(geom.Vec2{X: x}, title)
	})
}

func (d *Dialog) MinSize(req SizeRequest) geom.Vec2 {
	// Padding and borders are not available to the content
	content := d.content.MinSize(req.Reduced(d.decorations()))
	buttons := d.buttons.minSize(req)

	// Widest child on X, stacked on Y
	size := geom.Vec2{
		X: max(content.X, buttons.X),
		Y: content.Y + buttons.Y,
	}.Add(d.decorations())

	if d.title != "" {
		// Junction glyph and a space on each side of the title
		size.X = max(size.X, tui.Width(d.title)+6)
	}
	return size
}

func (d *Dialog) Layout(size geom.Vec2) {
	size = size.Sub(d.decorations())

	// Buttons get their minimum; content makes do with what is left
	height := d.buttons.layout(AtMostSize(size))
	d.content.Layout(size.Sub(geom.Vec2{Y: height}))
}

func (d *Dialog) HandleKey(ev terminal.Event) EventResult {
	i, onButton := d.focus.Button()

	var res EventResult
	if onButton {
		res = d.buttons[i].HandleKey(ev)
	} else {
		res = d.content.HandleKey(ev)
	}
	if res.IsConsumed() {
		return res
	}

	next, ok := nextFocus(d.focus, d.keys.Move(ev), len(d.buttons))
	if !ok {
		return res
	}
	// Going back up needs the content's consent
	if next == FocusContent && !d.content.TakeFocus() {
		return Ignored()
	}
	d.focus = next
	return Consumed(nil)
}

// TakeFocus prefers the first button over the content when there are buttons
func (d *Dialog) TakeFocus() bool {
	if len(d.buttons) > 0 {
		d.focus = FocusButton(0)
		return true
	}
	d.focus = FocusContent
	return d.content.TakeFocus()
}
