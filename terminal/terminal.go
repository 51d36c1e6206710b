package terminal

import (
	"io"
	"os"
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode and the alternate screen
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until next input event
	// Returns an EventClosed event once the terminal is finalized
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// Reset sequences written by EmergencyReset
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiSGR0          = []byte("\x1b[0m")
	csiRIS           = []byte("\x1bc") // Reset to Initial State
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
