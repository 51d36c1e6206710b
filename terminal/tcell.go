package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tcellTerminal implements Terminal on top of a tcell.Screen
type tcellTerminal struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// postedEvent carries a synthetic Event through the tcell event queue
type postedEvent struct {
	tcell.EventTime
	ev Event
}

// New creates a Terminal attached to the controlling tty
func New() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing, uninitialized tcell screen
// Tests pass tcell.NewSimulationScreen here
func NewWithScreen(s tcell.Screen) Terminal {
	return &tcellTerminal{screen: s}
}

// Init enters raw mode and sets up the screen
func (t *tcellTerminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *tcellTerminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

// Flush copies the cell buffer to the screen and shows it
func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		prevWide := false
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(cells) {
				break
			}
			c := cells[idx]
			// Trailing half of a wide rune is owned by the previous cell
			if c.Rune == 0 && prevWide {
				prevWide = false
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, cellStyle(c))
			prevWide = runewidth.RuneWidth(r) == 2
		}
	}
	t.screen.Show()
}

// PollEvent blocks until next input event
func (t *tcellTerminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{Type: EventClosed}
		case *postedEvent:
			return ev.ev
		case *tcell.EventKey:
			if out, ok := translateKey(ev); ok {
				return out
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventError:
			return Event{Type: EventError, Err: ev}
		}
	}
}

// PostEvent injects a synthetic event, dropped if the queue is full
func (t *tcellTerminal) PostEvent(ev Event) {
	p := &postedEvent{ev: ev}
	p.SetEventNow()
	_ = t.screen.PostEvent(p)
}

// cellStyle converts cell colors and attributes to a tcell style
func cellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.Fg.IsDefault() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
	}
	if !c.Bg.IsDefault() {
		st = st.Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	}
	if c.Attrs == AttrNone {
		return st
	}
	return st.
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}

// translateKey maps a tcell key event onto Key, false if it has no equivalent
func translateKey(ev *tcell.EventKey) (Event, bool) {
	out := Event{Type: EventKey, Modifiers: translateMods(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out, true
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBacktab:
		out.Key = KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyDelete:
		out.Key = KeyDelete
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyHome:
		out.Key = KeyHome
	case tcell.KeyEnd:
		out.Key = KeyEnd
	case tcell.KeyPgUp:
		out.Key = KeyPageUp
	case tcell.KeyPgDn:
		out.Key = KeyPageDown
	case tcell.KeyInsert:
		out.Key = KeyInsert
	default:
		k := ev.Key()
		switch {
		case k >= tcell.KeyF1 && k <= tcell.KeyF12:
			out.Key = KeyF1 + Key(k-tcell.KeyF1)
		case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
			out.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
		default:
			return Event{}, false
		}
	}
	return out, true
}

func translateMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}
