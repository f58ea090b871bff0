package catalog

import "testing"

func TestSpawnableRespectsWaveAndBudget(t *testing.T) {
	tests := []struct {
		name   string
		wave   int
		budget int
		want   []Kind
	}{
		{"wave 1 only drifters", 1, 10, []Kind{Drifter}},
		{"wave 2 adds zigzaggers", 2, 10, []Kind{Drifter, Zigzagger}},
		{"budget excludes expensive", 8, 2, []Kind{Drifter, Zigzagger}},
		{"wave 8 everything", 8, 4, []Kind{Drifter, Zigzagger, Tank, Dasher, Shooter, Splitter}},
		{"empty budget", 8, 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Spawnable(tc.wave, tc.budget)
			if len(got) != len(tc.want) {
				t.Fatalf("Spawnable(%d, %d) returned %d specs, expected %d", tc.wave, tc.budget, len(got), len(tc.want))
			}
			for i, s := range got {
				if s.Kind != tc.want[i] {
					t.Errorf("spec %d = %v, expected %v", i, s.Kind, tc.want[i])
				}
				if s.UnlockWave > tc.wave || s.Cost > tc.budget {
					t.Errorf("%v violates wave %d / budget %d", s.Kind, tc.wave, tc.budget)
				}
			}
		})
	}
}

func TestSplitDroneNeverSpawnable(t *testing.T) {
	for wave := 1; wave <= 50; wave++ {
		for _, s := range Spawnable(wave, 100) {
			if s.Kind == SplitDrone {
				t.Fatalf("split drone offered at wave %d", wave)
			}
		}
	}
	if d := Enemy(SplitDrone); d.HP != 1 || d.Radius != 9 {
		t.Errorf("unexpected split drone spec %+v", d)
	}
}

func TestEnemyTableValues(t *testing.T) {
	tank := Enemy(Tank)
	if tank.HP != 9 || tank.Cost != 4 || tank.UnlockWave != 4 || tank.Score != 240 {
		t.Errorf("tank spec drifted: %+v", tank)
	}
	if len(Enemies()) != 6 {
		t.Errorf("Enemies() = %d archetypes, expected 6", len(Enemies()))
	}
}

func TestUpgradePool(t *testing.T) {
	pool := Upgrades()
	if len(pool) != int(NumUpgrades) {
		t.Fatalf("pool has %d upgrades, expected %d", len(pool), NumUpgrades)
	}

	seen := make(map[string]bool)
	for i, u := range pool {
		if u.ID != UpgradeID(i) {
			t.Errorf("upgrade %q at index %d has ID %d", u.Key, i, u.ID)
		}
		if seen[u.Key] {
			t.Errorf("duplicate upgrade key %q", u.Key)
		}
		seen[u.Key] = true
		if u.Name == "" || u.Description == "" || u.Icon == "" || u.Magnitude <= 0 {
			t.Errorf("incomplete upgrade %+v", u)
		}
	}

	// Mutating the returned slice must not leak into the pool.
	pool[0].Name = "tampered"
	if u, _ := Lookup(FireRate); u.Name != "Rapid Feed" {
		t.Error("Upgrades() exposed internal storage")
	}
}

func TestParseUpgrade(t *testing.T) {
	id, ok := ParseUpgrade("maxHp")
	if !ok || id != MaxHP {
		t.Errorf("ParseUpgrade(maxHp) = %v, %v", id, ok)
	}
	if _, ok := ParseUpgrade("nope"); ok {
		t.Error("unknown key should not parse")
	}
	if MaxShield.String() != "maxShield" {
		t.Errorf("String() = %q", MaxShield.String())
	}
	if _, ok := Lookup(NumUpgrades); ok {
		t.Error("Lookup out of range should fail")
	}
}
