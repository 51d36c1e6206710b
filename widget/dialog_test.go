package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuikit/geom"
	"github.com/lixenwraith/tuikit/terminal"
)

func noop(Application) {}

func TestButtonRowMinSize(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   geom.Vec2
	}{
		{"empty", nil, geom.Vec2{}},
		{"one", []string{"Ok"}, geom.Vec2{X: 7, Y: 2}},
		{"two narrow", []string{"A", "B"}, geom.Vec2{X: 12, Y: 2}},
		{"three", []string{"Yes", "No", "Cancel"}, geom.Vec2{X: 8 + 7 + 11, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var row buttonRow
			for _, l := range tt.labels {
				row = append(row, NewSizedView(NewButton(l, noop)))
			}
			assert.Equal(t, tt.want, row.minSize(Unbounded()))
		})
	}
}

func TestDialogMinSize(t *testing.T) {
	tests := []struct {
		name    string
		content geom.Vec2
		title   string
		buttons []string
		want    geom.Vec2
	}{
		{"content only", geom.Vec2{X: 5, Y: 3}, "", nil, geom.Vec2{X: 9, Y: 5}},
		{"buttons wider than content", geom.Vec2{X: 1, Y: 1}, "", []string{"A", "B"}, geom.Vec2{X: 16, Y: 5}},
		{"content wider than buttons", geom.Vec2{X: 20, Y: 2}, "", []string{"A"}, geom.Vec2{X: 24, Y: 6}},
		{"title wider than body", geom.Vec2{X: 1, Y: 1}, "0123456789", nil, geom.Vec2{X: 16, Y: 3}},
		{"title narrower than body", geom.Vec2{X: 30, Y: 1}, "T", nil, geom.Vec2{X: 34, Y: 3}},
		{"empty content", geom.Vec2{}, "", nil, geom.Vec2{X: 4, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&fakeView{min: tt.content}).Title(tt.title)
			for _, l := range tt.buttons {
				d.Button(l, noop)
			}
			assert.Equal(t, tt.want, d.MinSize(Unbounded()))
		})
	}
}

func TestDialogMinSizeReducesContentRequest(t *testing.T) {
	content := &fakeView{min: geom.Vec2{X: 3, Y: 1}}
	d := New(content)

	d.MinSize(AtMostSize(geom.Vec2{X: 40, Y: 10}))

	require.Len(t, content.requests, 1)
	assert.Equal(t, AtMost(36), content.requests[0].W)
	assert.Equal(t, AtMost(8), content.requests[0].H)

	// A request smaller than the decorations saturates instead of going negative
	d.MinSize(AtMostSize(geom.Vec2{X: 2, Y: 1}))
	assert.Equal(t, AtMost(0), content.requests[1].W)
	assert.Equal(t, AtMost(0), content.requests[1].H)

	d.MinSize(Unbounded())
	assert.Equal(t, Unbounded(), content.requests[2])
}

func TestDialogLayoutAtMinSize(t *testing.T) {
	tests := []struct {
		name    string
		content geom.Vec2
		buttons []string
	}{
		{"no buttons", geom.Vec2{X: 8, Y: 3}, nil},
		{"narrow content", geom.Vec2{X: 8, Y: 3}, []string{"A", "B"}},
		{"wide content", geom.Vec2{X: 30, Y: 4}, []string{"Ok", "Cancel"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := &fakeView{min: tt.content}
			d := New(content)
			for _, l := range tt.buttons {
				d.Button(l, noop)
			}

			d.Layout(d.MinSize(Unbounded()))

			assert.True(t, tt.content.Fits(content.laidOut),
				"content laid out at %v, below its minimum %v", content.laidOut, tt.content)
			assert.GreaterOrEqual(t, content.laidOut.X, tt.content.X)
			assert.Equal(t, tt.content.Y, content.laidOut.Y)
			for i, b := range d.buttons {
				assert.Equal(t, b.MinSize(Unbounded()), b.Size, "button %d", i)
			}
		})
	}
}

func TestDialogLayoutTooSmall(t *testing.T) {
	content := &fakeView{min: geom.Vec2{X: 10, Y: 5}}
	d := New(content).Button("Ok", noop)

	d.Layout(geom.Vec2{X: 3, Y: 2})

	assert.Equal(t, geom.Zero, content.laidOut)
}

func TestDialogTakeFocus(t *testing.T) {
	tests := []struct {
		name      string
		focusable bool
		buttons   int
		want      bool
		wantFocus Focus
	}{
		{"buttons win over focusable content", true, 2, true, FocusButton(0)},
		{"buttons with inert content", false, 1, true, FocusButton(0)},
		{"focusable content without buttons", true, 0, true, FocusContent},
		{"inert content without buttons", false, 0, false, FocusContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&fakeView{focusable: tt.focusable})
			for i := 0; i < tt.buttons; i++ {
				d.Button("b", noop)
			}
			assert.Equal(t, tt.want, d.TakeFocus())
			assert.Equal(t, tt.wantFocus, d.Focus())
		})
	}
}

func TestDialogHandleKeyFocusMoves(t *testing.T) {
	tests := []struct {
		name      string
		buttons   int
		focusable bool
		start     Focus
		key       terminal.Key
		consumed  bool
		wantFocus Focus
	}{
		{"content down to first button", 1, false, FocusContent, terminal.KeyDown, true, FocusButton(0)},
		{"content down without buttons", 0, false, FocusContent, terminal.KeyDown, false, FocusContent},
		{"content up stays", 2, true, FocusContent, terminal.KeyUp, false, FocusContent},
		{"content right stays", 2, true, FocusContent, terminal.KeyRight, false, FocusContent},
		{"button right", 2, false, FocusButton(0), terminal.KeyRight, true, FocusButton(1)},
		{"last button right", 2, false, FocusButton(1), terminal.KeyRight, false, FocusButton(1)},
		{"button left", 3, false, FocusButton(2), terminal.KeyLeft, true, FocusButton(1)},
		{"first button left", 1, false, FocusButton(0), terminal.KeyLeft, false, FocusButton(0)},
		{"button up to focusable content", 2, true, FocusButton(1), terminal.KeyUp, true, FocusContent},
		{"button up to inert content", 2, false, FocusButton(1), terminal.KeyUp, false, FocusButton(1)},
		{"button down", 2, true, FocusButton(0), terminal.KeyDown, false, FocusButton(0)},
		{"unbound key on button", 2, true, FocusButton(0), terminal.KeyEscape, false, FocusButton(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&fakeView{focusable: tt.focusable})
			for i := 0; i < tt.buttons; i++ {
				d.Button("b", noop)
			}
			d.focus = tt.start

			res := d.HandleKey(key(tt.key))

			assert.Equal(t, tt.consumed, res.IsConsumed())
			assert.Nil(t, res.Callback())
			assert.Equal(t, tt.wantFocus, d.Focus())
		})
	}
}

func TestDialogContentConsumesFirst(t *testing.T) {
	content := &fakeView{consumes: true}
	d := New(content).Button("Ok", noop)

	res := d.HandleKey(key(terminal.KeyDown))

	assert.True(t, res.IsConsumed())
	assert.Equal(t, FocusContent, d.Focus())
	assert.Equal(t, 1, content.keys)
}

func TestDialogButtonsDoNotForwardToContent(t *testing.T) {
	content := &fakeView{consumes: true}
	d := New(content).Button("Ok", noop)
	require.True(t, d.TakeFocus())

	d.HandleKey(key(terminal.KeyEscape))

	assert.Zero(t, content.keys)
}

func TestDialogEnterRunsButtonCallback(t *testing.T) {
	var pressed []string
	d := New(&fakeView{}).
		Button("First", func(Application) { pressed = append(pressed, "first") }).
		Button("Second", func(Application) { pressed = append(pressed, "second") })
	require.True(t, d.TakeFocus())

	require.True(t, d.HandleKey(key(terminal.KeyRight)).IsConsumed())
	res := d.HandleKey(key(terminal.KeyEnter))

	require.True(t, res.IsConsumed())
	require.NotNil(t, res.Callback())
	res.Callback()(&fakeApp{})
	assert.Equal(t, []string{"second"}, pressed)
}

func TestDialogDismissButton(t *testing.T) {
	d := New(&fakeView{}).DismissButton("Close")
	require.True(t, d.TakeFocus())

	res := d.HandleKey(key(terminal.KeyEnter))
	require.NotNil(t, res.Callback())

	app := &fakeApp{}
	res.Callback()(app)
	assert.Equal(t, 1, app.popped)
	assert.Zero(t, app.quit)
}

func TestDialogMoveRightNeverDecreases(t *testing.T) {
	d := New(&fakeView{}).Button("a", noop).Button("b", noop).Button("c", noop)
	require.True(t, d.TakeFocus())

	prev, _ := d.Focus().Button()
	for i := 0; i < 5; i++ {
		d.HandleKey(key(terminal.KeyRight))
		cur, ok := d.Focus().Button()
		require.True(t, ok)
		assert.GreaterOrEqual(t, cur, prev)
		assert.Less(t, cur, d.ButtonCount())
		prev = cur
	}
	assert.Equal(t, 2, prev)
}

func TestDialogKeymap(t *testing.T) {
	d := New(&fakeView{focusable: true}).Keys(ViKeymap()).Button("a", noop).Button("b", noop)

	require.True(t, d.HandleKey(terminal.RuneEvent('j')).IsConsumed())
	assert.Equal(t, FocusButton(0), d.Focus())
	require.True(t, d.HandleKey(terminal.RuneEvent('l')).IsConsumed())
	assert.Equal(t, FocusButton(1), d.Focus())
	require.True(t, d.HandleKey(terminal.RuneEvent('k')).IsConsumed())
	assert.Equal(t, FocusContent, d.Focus())
}

func TestDialogScrollsThenMovesToButtons(t *testing.T) {
	text := NewTextView("one\ntwo\nthree\nfour")
	d := New(text).DismissButton("Ok")

	// Room for two lines of text above the button row
	d.Layout(geom.Vec2{X: 14, Y: 6})
	require.True(t, text.TakeFocus())

	assert.True(t, d.HandleKey(key(terminal.KeyDown)).IsConsumed())
	assert.True(t, d.HandleKey(key(terminal.KeyDown)).IsConsumed())
	assert.Equal(t, FocusContent, d.Focus())
	assert.Equal(t, 2, text.Offset())

	assert.True(t, d.HandleKey(key(terminal.KeyDown)).IsConsumed())
	assert.Equal(t, FocusButton(0), d.Focus())
	assert.Equal(t, 2, text.Offset())
}

func TestDialogBuilder(t *testing.T) {
	content := &fakeView{}
	d := New(content).
		Title("Confirm").
		Button("Yes", noop).
		DismissButton("No").
		Padding(geom.Uniform(2)).
		Borders(geom.NewMargins(1, 1, 1, 1))

	assert.Equal(t, "Confirm", d.TitleText())
	assert.Equal(t, 2, d.ButtonCount())
	assert.Equal(t, "Yes", d.ButtonLabel(0))
	assert.Equal(t, "No", d.ButtonLabel(1))
	assert.Same(t, content, d.Content())
	assert.Equal(t, FocusContent, d.Focus())
	// Button row 8+7 wide, padding 2+2 and borders 1+1 on each axis
	assert.Equal(t, geom.Vec2{X: 21, Y: 8}, d.MinSize(Unbounded()))
}

func TestDialogDraw(t *testing.T) {
	d := New(NewTextView("hi")).Title("T").Button("Ok", noop)
	size := d.MinSize(Unbounded())
	require.Equal(t, geom.Vec2{X: 11, Y: 5}, size)
	d.Layout(size)

	c := newCanvas(size.X, size.Y)
	d.Draw(c.printer(), false)

	want := []string{
		"┌──┤ T ├──┐",
		"│ hi      │",
		"│         │",
		"│  < Ok > │",
		"└─────────┘",
	}
	for y, line := range want {
		assert.Equal(t, line, c.row(y), "row %d", y)
	}
	assert.Equal(t, c.theme.Border, c.region.At(0, 0).Fg)
	assert.Equal(t, c.theme.Border, c.region.At(3, 0).Fg)
	assert.Equal(t, c.theme.TitlePrimary, c.region.At(5, 0).Fg)
	assert.Equal(t, terminal.AttrBold, c.region.At(5, 0).Attrs)
}

func TestDialogDrawFocusedButton(t *testing.T) {
	tests := []struct {
		name      string
		focused   bool
		inactive  bool
		wantBg    func(c *canvas) terminal.RGB
		wantAttrs terminal.Attr
	}{
		{"focused layer", true, false, func(c *canvas) terminal.RGB { return c.theme.Highlight }, terminal.AttrBold},
		{"background layer", true, true, func(c *canvas) terminal.RGB { return c.theme.HighlightInactive }, terminal.AttrNone},
		{"dialog not focused", false, false, func(c *canvas) terminal.RGB { return c.theme.Bg }, terminal.AttrNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(NewTextView("hi")).Button("Ok", noop)
			require.True(t, d.TakeFocus())
			size := d.MinSize(Unbounded())
			d.Layout(size)

			c := newCanvas(size.X, size.Y)
			p := c.printer()
			if tt.inactive {
				p = p.Background()
			}
			d.Draw(p, tt.focused)

			// Label starts two cells into the button
			label := c.region.At(5, 3)
			require.Equal(t, 'O', label.Rune)
			assert.Equal(t, tt.wantBg(c), label.Bg)
			assert.Equal(t, tt.wantAttrs, label.Attrs)
		})
	}
}

func TestDialogDrawTitleTruncated(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"room for two cells", 8, "┌┤ a… ├┐"},
		{"room for five cells", 11, "┌┤ a ve… ├┐"},
		{"no room", 6, "┌────┐"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&fakeView{}).Title("a very long title")

			c := newCanvas(tt.width, 3)
			require.NotPanics(t, func() { d.Draw(c.printer(), true) })
			assert.Equal(t, tt.want, c.row(0))
		})
	}
}

func TestDialogDrawButtonsRightAligned(t *testing.T) {
	d := New(&fakeView{min: geom.Vec2{X: 1, Y: 1}}).Button("A", noop).Button("B", noop)
	size := geom.Vec2{X: 20, Y: 5}
	d.Layout(size)

	c := newCanvas(size.X, size.Y)
	d.Draw(c.printer(), false)

	assert.Equal(t, "│      < A > < B > │", c.row(3))
}
