// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadProjectileDefinitions reads a projectile configuration file and replaces
// the ProjectileLibrary. Invalid definitions fail the load; nothing is
// installed partially.
func LoadProjectileDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read projectile definitions file: %w", err)
	}

	var projDefs []ProjectileDefinition
	if err := json.Unmarshal(file, &projDefs); err != nil {
		return fmt.Errorf("failed to unmarshal projectile definitions: %w", err)
	}

	lib := make(map[string]ProjectileDefinition, len(projDefs))
	for _, def := range projDefs {
		if err := ValidateProjectileDefinition(def); err != nil {
			return fmt.Errorf("projectile definition %q: %w", def.ID, err)
		}
		lib[def.ID] = def
	}

	ProjectileLibrary = lib
	return nil
}

// LoadEffectDefinitions reads a destruction-effect configuration file and
// replaces the EffectLibrary.
func LoadEffectDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read effect definitions file: %w", err)
	}

	var effectDefs []EffectDefinition
	if err := json.Unmarshal(file, &effectDefs); err != nil {
		return fmt.Errorf("failed to unmarshal effect definitions: %w", err)
	}

	lib := make(map[string]EffectDefinition, len(effectDefs))
	for _, def := range effectDefs {
		if def.ID == "" || def.DurationMs <= 0 || def.MaxRadius <= 0 {
			return fmt.Errorf("effect definition %q: duration and radius must be positive", def.ID)
		}
		lib[def.ID] = def
	}

	EffectLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the
// EnemyLibrary. Projectile and effect references are resolved against the
// already-loaded libraries, so load order matters: projectiles and effects
// first, enemies last.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		normalizeEnemyDefinition(&def)
		if err := ValidateEnemyDefinition(def); err != nil {
			return fmt.Errorf("enemy definition %q: %w", def.ID, err)
		}
		lib[def.ID] = def
	}

	EnemyLibrary = lib
	return nil
}

// ValidateProjectileDefinition checks a projectile definition for contract
// violations. Runs at load time; the tick loop trusts the libraries.
func ValidateProjectileDefinition(def ProjectileDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("missing id")
	}
	switch def.Behavior {
	case BehaviorStraight, BehaviorAimed, BehaviorSpread, BehaviorHoming, BehaviorBomb:
	default:
		return fmt.Errorf("unknown behavior %q", def.Behavior)
	}
	if def.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", def.Speed)
	}
	if def.LifetimeMs <= 0 {
		return fmt.Errorf("lifetime must be positive, got %d", def.LifetimeMs)
	}
	if def.Destructible && def.HitPoints < 0 {
		return fmt.Errorf("hit points must not be negative, got %d", def.HitPoints)
	}
	return nil
}

// ValidateEnemyDefinition checks an enemy definition for contract violations.
// Anything that would otherwise degrade a tick (bad variant, dangling
// projectile or effect reference, non-positive health) is rejected here.
func ValidateEnemyDefinition(def EnemyDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("missing id")
	}
	if def.Health <= 0 {
		return fmt.Errorf("health must be positive, got %d", def.Health)
	}

	switch def.Movement.Type {
	case MoveStraight, MoveDive:
	case MoveSine:
		if def.Movement.FrequencyHz <= 0 {
			return fmt.Errorf("sine movement requires a positive frequency")
		}
	case MoveHover:
		if def.Movement.CeilingY != nil && *def.Movement.CeilingY < 0 {
			return fmt.Errorf("hover ceiling must not be negative")
		}
	default:
		return fmt.Errorf("unknown movement type %q", def.Movement.Type)
	}
	if def.Movement.Speed <= 0 {
		return fmt.Errorf("movement speed must be positive, got %v", def.Movement.Speed)
	}

	switch def.Fire.Type {
	case FireNone:
	case FireInterval:
		if def.Fire.IntervalMs <= 0 {
			return fmt.Errorf("interval fire requires a positive interval")
		}
		if def.Fire.TotalShots < 0 {
			return fmt.Errorf("total shots must not be negative, got %d", def.Fire.TotalShots)
		}
	case FireTorpedo:
		if def.Fire.IntervalMs <= 0 {
			return fmt.Errorf("torpedo fire requires a positive interval")
		}
		if def.Fire.Homing == nil {
			return fmt.Errorf("torpedo fire requires homing parameters")
		}
	case FireBomb:
		if def.Fire.IntervalMs <= 0 {
			return fmt.Errorf("bomb fire requires a positive interval")
		}
		if def.Fire.Gravity <= 0 {
			return fmt.Errorf("bomb fire requires positive gravity")
		}
	default:
		return fmt.Errorf("unknown fire type %q", def.Fire.Type)
	}

	firesProjectiles := def.Fire.Type != FireNone || def.Script != nil
	if firesProjectiles {
		if def.ProjectileID == "" {
			return fmt.Errorf("firing enemy requires a projectile reference")
		}
		if _, ok := ProjectileLibrary[def.ProjectileID]; !ok {
			return fmt.Errorf("unknown projectile reference %q", def.ProjectileID)
		}
	}

	if def.Script != nil {
		if def.Script.Type != ScriptBurstAtTop {
			return fmt.Errorf("unknown script type %q", def.Script.Type)
		}
		if def.Script.ShotCount <= 0 || def.Script.IntervalMs <= 0 {
			return fmt.Errorf("script requires positive shot count and interval")
		}
	}

	if def.Retreat != nil {
		if def.Retreat.Speed <= 0 {
			return fmt.Errorf("retreat speed must be positive, got %v", def.Retreat.Speed)
		}
		if def.Retreat.DelayMs < 0 {
			return fmt.Errorf("retreat delay must not be negative, got %d", def.Retreat.DelayMs)
		}
	}

	if def.EffectID != "" {
		if _, ok := EffectLibrary[def.EffectID]; !ok {
			return fmt.Errorf("unknown effect reference %q", def.EffectID)
		}
	}

	return nil
}

// normalizeEnemyDefinition fills the documented defaults so the tick loop
// never has to special-case missing content.
func normalizeEnemyDefinition(def *EnemyDefinition) {
	if len(def.MuzzleOffsets) == 0 {
		def.MuzzleOffsets = []Offset{{X: 0, Y: 0}}
	}
	if def.Fire.Type == FireInterval && def.Fire.BurstCount <= 0 {
		def.Fire.BurstCount = 1
	}
	if def.Scale == 0 {
		def.Scale = 1
	}
	if def.Visuals.RadiusFactor == 0 {
		def.Visuals.RadiusFactor = 1
	}
}
