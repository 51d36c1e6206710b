package app

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const bellSampleRate = beep.SampleRate(44100)

// Bell signals a key that no layer or global callback handled
type Bell interface {
	Ring()
}

// SilentBell does nothing
type SilentBell struct{}

func (SilentBell) Ring() {}

// ToneBell plays a short sine tone through the speaker
type ToneBell struct {
	freq     float64
	duration time.Duration
}

// NewToneBell initializes the speaker and returns a bell playing freq Hz for dur
// Callers usually fall back to SilentBell on error; there may be no audio device
func NewToneBell(freq float64, dur time.Duration) (*ToneBell, error) {
	if freq <= 0 || dur <= 0 {
		return nil, fmt.Errorf("bell tone %vHz for %v: must be positive", freq, dur)
	}
	// Probe the generator before touching the device
	if _, err := generators.SineTone(bellSampleRate, freq); err != nil {
		return nil, fmt.Errorf("bell tone: %w", err)
	}
	if err := speaker.Init(bellSampleRate, bellSampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("bell speaker: %w", err)
	}
	return &ToneBell{freq: freq, duration: dur}, nil
}

// Ring queues the tone; it does not block
func (b *ToneBell) Ring() {
	sine, err := generators.SineTone(bellSampleRate, b.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(bellSampleRate.N(b.duration), sine))
}
