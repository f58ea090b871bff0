// Package audio synthesizes the game's sound cues with beep and plays them
// through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cues maps each engine cue to its tone.
var Cues = map[core.Cue]Tone{
	core.CueShoot:     {Freq: 340, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.03, Slide: 120},
	core.CueExplosion: {Freq: 90, Duration: 200 * time.Millisecond, Wave: WaveSaw, Gain: 0.08, Slide: -70},
	core.CuePickup:    {Freq: 520, Duration: 100 * time.Millisecond, Wave: WaveTriangle, Gain: 0.05, Slide: 160},
	core.CueHit:       {Freq: 180, Duration: 80 * time.Millisecond, Wave: WaveSquare, Gain: 0.05, Slide: -40},
	core.CueWarning:   {Freq: 240, Duration: 250 * time.Millisecond, Wave: WaveSaw, Gain: 0.08},
}

// Player implements core.Audio. Cues are dropped while the player is
// disabled or before Init succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
	volume      float64

	// queue hands a finished streamer to the output.
	queue func(beep.Streamer)
}

// NewPlayer creates a player at the given master volume (0..1).
func NewPlayer(volume float64) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		enabled: true,
		volume:  volume,
	}
	p.queue = p.addToMixer
	return p
}

// Init opens the speaker. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences pending cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

func (p *Player) Shoot()     { p.Play(core.CueShoot) }
func (p *Player) Explosion() { p.Play(core.CueExplosion) }
func (p *Player) Pickup()    { p.Play(core.CuePickup) }
func (p *Player) Hit()       { p.Play(core.CueHit) }
func (p *Player) Warning()   { p.Play(core.CueWarning) }

// Play triggers cue if the player is enabled.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	tone, ok := Cues[cue]
	if !ok {
		return
	}
	p.queue(withVolume(NewTone(tone, sampleRate), p.volume))
}

func (p *Player) addToMixer(s beep.Streamer) {
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
