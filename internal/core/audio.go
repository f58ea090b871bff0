package core

// Cue identifies a one-shot sound effect.
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CuePickup
	CueHit
	CueWarning
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueHit:
		return "hit"
	case CueWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Audio receives fire-and-forget sound triggers from the engine.
type Audio interface {
	Shoot()
	Explosion()
	Pickup()
	Hit()
	Warning()
	SetEnabled(enabled bool)
}

// NopAudio discards every cue. Used for SSH sessions and tests.
type NopAudio struct{}

func (NopAudio) Shoot()          {}
func (NopAudio) Explosion()      {}
func (NopAudio) Pickup()         {}
func (NopAudio) Hit()            {}
func (NopAudio) Warning()        {}
func (NopAudio) SetEnabled(bool) {}
