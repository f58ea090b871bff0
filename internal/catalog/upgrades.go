package catalog

// UpgradeID identifies an upgrade in the pool.
type UpgradeID int

const (
	FireRate UpgradeID = iota
	Damage
	ProjectileSpeed
	ExtraProjectile
	Pierce
	CritChance
	Magnet
	MaxHP
	MaxShield
	ShieldRegen
	MoveSpeed
	Dash
	NumUpgrades
)

// Upgrade is one entry of the pool. Magnitude is the per-stack effect:
// a fraction for multipliers, an absolute amount for MaxHP and MaxShield,
// a count for ExtraProjectile and Pierce.
type Upgrade struct {
	ID          UpgradeID
	Key         string
	Name        string
	Description string
	Icon        string
	Magnitude   float64
}

var upgradePool = [NumUpgrades]Upgrade{
	{FireRate, "fireRate", "Rapid Feed", "Fire Rate +15%", "⚡", 0.15},
	{Damage, "damage", "Overcharge Rounds", "Damage +20%", "✹", 0.20},
	{ProjectileSpeed, "projectileSpeed", "Rail Slugs", "Projectile Speed +25%", "➤", 0.25},
	{ExtraProjectile, "extraProjectile", "Tri-Shot", "+1 Projectile with slight spread", "⋮", 1},
	{Pierce, "pierce", "Penetrator", "Pierce +1 enemy", "⟡", 1},
	{CritChance, "critChance", "Targeting AI", "Crit Chance +10% (2x damage)", "◎", 0.10},
	{Magnet, "magnet", "Flux Magnet", "Pickup radius +25%", "🧲", 0.25},
	{MaxHP, "maxHp", "Hull Plating", "Max HP +20", "♥", 20},
	{MaxShield, "maxShield", "Shield Cells", "Shield Max +20", "⬡", 20},
	{ShieldRegen, "shieldRegen", "Shield Relay", "Shield Regen +15%", "↻", 0.15},
	{MoveSpeed, "moveSpeed", "Afterburners", "Move Speed +12%", "⇧", 0.12},
	{Dash, "dash", "Thruster Dash", "Short cooldown burst + 0.25s invuln", "⤴", 1},
}

// String returns the upgrade key, e.g. "fireRate".
func (id UpgradeID) String() string {
	if id < 0 || id >= NumUpgrades {
		return "unknown"
	}
	return upgradePool[id].Key
}

// Upgrades returns the full pool in ID order.
func Upgrades() []Upgrade {
	out := make([]Upgrade, NumUpgrades)
	copy(out, upgradePool[:])
	return out
}

// Lookup returns the upgrade for id.
func Lookup(id UpgradeID) (Upgrade, bool) {
	if id < 0 || id >= NumUpgrades {
		return Upgrade{}, false
	}
	return upgradePool[id], true
}

// ParseUpgrade resolves an upgrade key such as "maxHp".
func ParseUpgrade(key string) (UpgradeID, bool) {
	for _, u := range upgradePool {
		if u.Key == key {
			return u.ID, true
		}
	}
	return 0, false
}
