package widget

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/tuikit/terminal"
)

// Move is a semantic focus-movement command
type Move uint8

const (
	MoveNone Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "none"
	}
}

// Binding matches one platform key code
// Rune is only compared when Key is terminal.KeyRune
type Binding struct {
	Key  terminal.Key
	Rune rune
}

// Matches reports whether ev is a key event for this binding
func (b Binding) Matches(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey || ev.Key != b.Key {
		return false
	}
	return b.Key != terminal.KeyRune || ev.Rune == b.Rune
}

func (b Binding) String() string {
	if b.Key == terminal.KeyRune {
		if b.Rune == ' ' {
			return "space"
		}
		return string(b.Rune)
	}
	return b.Key.String()
}

// Control codes the terminal reports as their named keys
var aliasedCtrl = map[terminal.Key]string{
	terminal.KeyCtrlH: "backspace",
	terminal.KeyCtrlI: "tab",
	terminal.KeyCtrlM: "enter",
}

// ParseBinding resolves a key name ("up", "ctrl_n", "space") or a single
// character ("k")
func ParseBinding(s string) (Binding, error) {
	if s == "space" {
		return Binding{Key: terminal.KeyRune, Rune: ' '}, nil
	}
	if k, ok := terminal.KeyByName(s); ok {
		if name, aliased := aliasedCtrl[k]; aliased {
			return Binding{}, fmt.Errorf("key %q is indistinguishable from %q, bind %q instead", s, name, name)
		}
		return Binding{Key: k}, nil
	}
	if r, size := utf8.DecodeRuneInString(s); r != utf8.RuneError && size == len(s) {
		return Binding{Key: terminal.KeyRune, Rune: r}, nil
	}
	return Binding{}, fmt.Errorf("unknown key %q", s)
}

// Keymap maps platform key codes onto the four focus moves
type Keymap struct {
	Up    []Binding
	Down  []Binding
	Left  []Binding
	Right []Binding
}

// DefaultKeymap binds the arrow keys
func DefaultKeymap() Keymap {
	return Keymap{
		Up:    []Binding{{Key: terminal.KeyUp}},
		Down:  []Binding{{Key: terminal.KeyDown}},
		Left:  []Binding{{Key: terminal.KeyLeft}},
		Right: []Binding{{Key: terminal.KeyRight}},
	}
}

// ViKeymap binds the arrow keys plus h/j/k/l
func ViKeymap() Keymap {
	return DefaultKeymap().WithVi()
}

// WithVi returns a copy of k with h/j/k/l added to its moves
func (k Keymap) WithVi() Keymap {
	return Keymap{
		Up:    withRune(k.Up, 'k'),
		Down:  withRune(k.Down, 'j'),
		Left:  withRune(k.Left, 'h'),
		Right: withRune(k.Right, 'l'),
	}
}

func withRune(bs []Binding, r rune) []Binding {
	out := make([]Binding, len(bs), len(bs)+1)
	copy(out, bs)
	return append(out, Binding{Key: terminal.KeyRune, Rune: r})
}

// Move classifies ev, MoveNone if it is not a movement key
func (k Keymap) Move(ev terminal.Event) Move {
	switch {
	case matchAny(k.Up, ev):
		return MoveUp
	case matchAny(k.Down, ev):
		return MoveDown
	case matchAny(k.Left, ev):
		return MoveLeft
	case matchAny(k.Right, ev):
		return MoveRight
	}
	return MoveNone
}

func matchAny(bs []Binding, ev terminal.Event) bool {
	for _, b := range bs {
		if b.Matches(ev) {
			return true
		}
	}
	return false
}
