package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// drain reads s to the end and returns every left-channel sample.
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for cue, tone := range Cues {
		t.Run(cue.String(), func(t *testing.T) {
			samples := drain(NewTone(tone, rate))

			if want := rate.N(tone.Duration); len(samples) != want {
				t.Fatalf("got %d samples, expected %d", len(samples), want)
			}
			for i, v := range samples {
				if math.Abs(v) > tone.Gain+1e-9 {
					t.Fatalf("sample %d = %f exceeds gain %f", i, v, tone.Gain)
				}
			}
		})
	}
}

func TestToneDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := Tone{Freq: 200, Duration: 200 * time.Millisecond, Wave: WaveSquare, Gain: 0.5}

	samples := drain(NewTone(tone, rate))

	// A square wave exposes the envelope directly.
	first := math.Abs(samples[0])
	last := math.Abs(samples[len(samples)-1])
	if first != 0.5 {
		t.Errorf("first sample = %f, expected full gain", first)
	}
	if last > 0.001 {
		t.Errorf("last sample = %f, expected near silence", last)
	}
}

func TestToneStreamEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(Tone{Freq: 100, Duration: 10 * time.Millisecond, Gain: 0.1}, rate)

	buf := make([][2]float64, 4)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 10 {
		t.Errorf("streamed %d samples, expected 10", total)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted stream returned (%d, %v)", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestShapeBounds(t *testing.T) {
	waves := []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle}
	for _, w := range waves {
		for phase := 0.0; phase < 1; phase += 0.01 {
			if v := shape(w, phase); v < -1 || v > 1 {
				t.Fatalf("wave %d at phase %f = %f", w, phase, v)
			}
		}
	}
}

func TestDisabledPlayerIgnoresCues(t *testing.T) {
	p := NewPlayer(1)
	queued := 0
	p.queue = func(beep.Streamer) { queued++ }

	p.Shoot()
	p.Explosion()
	if queued != 2 {
		t.Fatalf("queued %d cues, expected 2", queued)
	}

	p.SetEnabled(false)
	p.Pickup()
	p.Hit()
	p.Warning()
	if queued != 2 {
		t.Errorf("disabled player queued %d cues", queued-2)
	}

	p.SetEnabled(true)
	p.Play(core.Cue(99))
	if queued != 2 {
		t.Error("unknown cue should be ignored")
	}
}

func TestUninitializedPlayerDropsCues(t *testing.T) {
	p := NewPlayer(0.5)
	p.Shoot()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Init", p.mixer.Len())
	}
	p.Close()
}

var _ core.Audio = (*Player)(nil)
