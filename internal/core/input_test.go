package core

import (
	"math"
	"testing"
)

func TestMovementAxis(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want Vec2
	}{
		{"idle", nil, V(0, 0)},
		{"left", []Key{KeyLeft}, V(-1, 0)},
		{"down", []Key{KeyDown}, V(0, 1)},
		{"opposites cancel", []Key{KeyLeft, KeyRight}, V(0, 0)},
		{"diagonal normalized", []Key{KeyUp, KeyRight}, V(math.Sqrt2/2, -math.Sqrt2/2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, k := range tc.keys {
				f.Set(k)
			}
			got := f.MovementAxis()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("MovementAxis() = %v, expected %v", got, tc.want)
			}
			if l := got.Len(); l > 1+1e-9 {
				t.Errorf("axis length %f exceeds 1", l)
			}
		})
	}
}

func TestInputFrameSetClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(KeyFire)
	f.Set(KeyPause)

	if !f.IsShooting() || !f.IsPressed(KeyPause) {
		t.Fatal("keys should be held after Set")
	}

	f.Unset(KeyPause)
	if f.IsPressed(KeyPause) {
		t.Error("Unset should release the key")
	}

	f.Clear()
	if f.IsShooting() {
		t.Error("Clear should release every key")
	}

	// Invalid keys are ignored
	f.Set(KeyNone)
	f.Set(Key(99))
	if f.Has(KeyNone) || f.Has(Key(99)) {
		t.Error("invalid keys must never read as held")
	}
}

func TestInputFrameSatisfiesInput(t *testing.T) {
	var in Input = &InputFrame{}
	if in.IsShooting() {
		t.Error("empty frame should not shoot")
	}
	var nop Input = NopInput{}
	if !nop.MovementAxis().IsZero() || nop.IsPressed(KeyFire) {
		t.Error("NopInput should report nothing")
	}
}
