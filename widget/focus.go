package widget

import "strconv"

// Focus is the dialog child holding keyboard focus: the content or one button
type Focus int

// FocusContent is the content widget
const FocusContent Focus = -1

// FocusButton is the i-th button in insertion (left to right) order
// Negative indices clamp to the leftmost button
func FocusButton(i int) Focus {
	return Focus(max(i, 0))
}

// Button returns the button index, false when focus is on the content
func (f Focus) Button() (int, bool) {
	return int(f), f >= 0
}

func (f Focus) String() string {
	if i, ok := f.Button(); ok {
		return "button(" + strconv.Itoa(i) + ")"
	}
	return "content"
}

// nextFocus is the transition taken when the focused child ignored a move
// Returns false when the move leads nowhere and the key stays ignored
func nextFocus(f Focus, m Move, buttons int) (Focus, bool) {
	i, onButton := f.Button()
	if !onButton {
		// From the content we can only go down, always to the leftmost button
		if m == MoveDown && buttons > 0 {
			return FocusButton(0), true
		}
		return f, false
	}

	switch m {
	case MoveUp:
		return FocusContent, true
	case MoveRight:
		if i+1 < buttons {
			return FocusButton(i + 1), true
		}
	case MoveLeft:
		if i > 0 {
			return FocusButton(i - 1), true
		}
	}
	return f, false
}
