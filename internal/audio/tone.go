package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// minFreq is the floor a sliding tone never drops below.
const minFreq = 40.0

// silence is the level the envelope decays to at the end of a tone.
const silence = 0.0001

// Tone describes a short synthesized effect: the frequency slides linearly
// by Slide Hz over Duration while the volume decays exponentially from Gain.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
	Slide    float64
}

// toneStreamer renders a Tone sample by sample.
type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
	decay    float64
}

// NewTone returns a streamer that yields exactly rate.N(t.Duration) samples.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	decay := 0.0
	if total > 0 && t.Gain > silence {
		decay = math.Log(silence/t.Gain) / float64(total)
	}
	return &toneStreamer{tone: t, rate: rate, total: total, decay: decay}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		progress := float64(s.position) / float64(s.total)
		freq := math.Max(minFreq, s.tone.Freq+s.tone.Slide*progress)
		gain := s.tone.Gain * math.Exp(s.decay*float64(s.position))

		val := gain * shape(s.tone.Wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error {
	return nil
}

// shape evaluates one period of w at phase in [0, 1).
func shape(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
