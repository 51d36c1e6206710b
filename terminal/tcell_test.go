package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

// nextInput skips resize notifications the screen may queue on init
func nextInput(term Terminal) Event {
	for {
		ev := term.PollEvent()
		if ev.Type != EventResize {
			return ev
		}
	}
}

func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2)

	cells := make([]Cell, 4*2)
	cells[0] = Cell{Rune: 'a', Fg: RGB{R: 255}, Attrs: AttrBold}
	cells[5] = Cell{Rune: 'z'}
	term.Flush(cells, 4, 2)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != 'a' {
		t.Errorf("Expected 'a' at (0,0), got %q", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute at (0,0)")
	}
	if r, _, _, _ := screen.GetContent(1, 1); r != 'z' {
		t.Errorf("Expected 'z' at (1,1), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(3, 0); r != ' ' {
		t.Errorf("Expected blank at (3,0), got %q", r)
	}
}

func TestPollEventTranslatesKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected Key
	}{
		{"Up", tcell.KeyUp, 0, KeyUp},
		{"Down", tcell.KeyDown, 0, KeyDown},
		{"Left", tcell.KeyLeft, 0, KeyLeft},
		{"Right", tcell.KeyRight, 0, KeyRight},
		{"Enter", tcell.KeyEnter, 0, KeyEnter},
		{"Ctrl+N", tcell.KeyCtrlN, 0, KeyCtrlN},
		{"F5", tcell.KeyF5, 0, KeyF5},
		{"Rune", tcell.KeyRune, 'j', KeyRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newSimTerminal(t, 10, 5)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			ev := nextInput(term)
			if ev.Type != EventKey {
				t.Fatalf("Expected key event, got type %d", ev.Type)
			}
			if ev.Key != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, ev.Key)
			}
			if tt.r != 0 && ev.Rune != tt.r {
				t.Errorf("Expected rune %q, got %q", tt.r, ev.Rune)
			}
		})
	}
}

func TestPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t, 10, 5)

	term.PostEvent(RuneEvent('q'))
	ev := nextInput(term)
	if ev.Key != KeyRune || ev.Rune != 'q' {
		t.Errorf("Expected posted rune event, got %+v", ev)
	}
}

func TestPollEventAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	term.Fini()
	term.Fini() // idempotent

	if ev := term.PollEvent(); ev.Type != EventClosed {
		t.Errorf("Expected EventClosed after Fini, got type %d", ev.Type)
	}
}
