package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimeDuration = 150 * time.Millisecond
	foundFreq     = 880
	noPathFreq    = 220
)

// Chime plays a short tone when a search finishes: high when a route was
// found, low when there is none.
type Chime struct {
	ready bool
}

// NewChime opens the speaker. A failure leaves a silent Chime and is
// returned so the caller can log it; the visualizer runs without sound.
func NewChime() (*Chime, error) {
	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{ready: true}, nil
}

// Play sounds the completion tone. Safe on a nil or silent Chime.
func (c *Chime) Play(found bool) {
	if c == nil || !c.ready {
		return
	}
	s, err := chimeStreamer(chimeRate, found)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}

// chimeStreamer builds the finite tone for an outcome.
func chimeStreamer(rate beep.SampleRate, found bool) (beep.Streamer, error) {
	freq := noPathFreq
	if found {
		freq = foundFreq
	}
	sine, err := generators.SineTone(rate, float64(freq))
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(chimeDuration), sine), nil
}
