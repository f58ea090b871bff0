package core

import "math"

// Key is a logical key the engine can query, abstracted from physical keys.
type Key int

const (
	KeyNone     Key = iota
	KeyLeft         // A, Left arrow
	KeyRight        // D, Right arrow
	KeyUp           // W, Up arrow
	KeyDown         // S, Down arrow
	KeyFire         // Space, pointer press
	KeyDash         // X, Shift
	KeyPause        // P, Escape
	KeyUpgrade1     // 1
	KeyUpgrade2     // 2
	KeyUpgrade3     // 3
	keyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyFire:
		return "Fire"
	case KeyDash:
		return "Dash"
	case KeyPause:
		return "Pause"
	case KeyUpgrade1:
		return "Upgrade1"
	case KeyUpgrade2:
		return "Upgrade2"
	case KeyUpgrade3:
		return "Upgrade3"
	default:
		return "None"
	}
}

// UpgradeKeys lists the numbered selection keys in slot order.
var UpgradeKeys = [3]Key{KeyUpgrade1, KeyUpgrade2, KeyUpgrade3}

// Input is the read-only view of player input the engine polls every tick.
type Input interface {
	// MovementAxis returns a unit or zero vector, diagonals normalized.
	MovementAxis() Vec2
	IsShooting() bool
	IsPressed(k Key) bool
}

// InputFrame holds which keys are down for one tick. Drivers rebuild it from
// device state each frame; it implements Input.
type InputFrame struct {
	down [keyCount]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a key as held.
func (f *InputFrame) Set(k Key) {
	if k > KeyNone && k < keyCount {
		f.down[k] = true
	}
}

// Unset marks a key as released.
func (f *InputFrame) Unset(k Key) {
	if k > KeyNone && k < keyCount {
		f.down[k] = false
	}
}

// Has returns true if the key is held this frame.
func (f InputFrame) Has(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return f.down[k]
}

// Clear releases every key.
func (f *InputFrame) Clear() {
	f.down = [keyCount]bool{}
}

// MovementAxis combines the direction keys into a normalized axis.
func (f InputFrame) MovementAxis() Vec2 {
	var v Vec2
	if f.Has(KeyLeft) {
		v.X--
	}
	if f.Has(KeyRight) {
		v.X++
	}
	if f.Has(KeyUp) {
		v.Y--
	}
	if f.Has(KeyDown) {
		v.Y++
	}
	if v.X != 0 && v.Y != 0 {
		v = v.Scale(math.Sqrt2 / 2)
	}
	return v
}

// IsShooting reports whether the fire key is held.
func (f InputFrame) IsShooting() bool {
	return f.Has(KeyFire)
}

// IsPressed reports whether k is held.
func (f InputFrame) IsPressed(k Key) bool {
	return f.Has(k)
}

// NopInput never reports any input.
type NopInput struct{}

func (NopInput) MovementAxis() Vec2 { return Vec2{} }
func (NopInput) IsShooting() bool   { return false }
func (NopInput) IsPressed(Key) bool { return false }
