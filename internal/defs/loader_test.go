package defs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// saveLibraries snapshots the global libraries so load tests can replace
// them freely.
func saveLibraries(t *testing.T) {
	t.Helper()
	prevProj, prevEffects, prevEnemies := ProjectileLibrary, EffectLibrary, EnemyLibrary
	t.Cleanup(func() {
		ProjectileLibrary, EffectLibrary, EnemyLibrary = prevProj, prevEffects, prevEnemies
	})
}

func writeJSON(t *testing.T, name string, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadProjectileDefinitions_ReplacesLibrary(t *testing.T) {
	saveLibraries(t)
	path := writeJSON(t, "projectiles.json", []ProjectileDefinition{
		{ID: "SHOT_A", Behavior: BehaviorStraight, Speed: 240, LifetimeMs: 1000, Damage: 1},
		{ID: "SHOT_B", Behavior: BehaviorHoming, Speed: 200, LifetimeMs: 3500, Damage: 1, Destructible: true, HitPoints: 2},
	})

	if err := LoadProjectileDefinitions(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(ProjectileLibrary) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(ProjectileLibrary))
	}
	if got := ProjectileLibrary["SHOT_B"]; !got.Destructible || got.HitPoints != 2 {
		t.Errorf("SHOT_B lost destructibility on load: %+v", got)
	}
}

func TestLoadProjectileDefinitions_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		def  ProjectileDefinition
	}{
		{"missing id", ProjectileDefinition{Behavior: BehaviorStraight, Speed: 240, LifetimeMs: 1000}},
		{"unknown behavior", ProjectileDefinition{ID: "X", Behavior: "CURVED", Speed: 240, LifetimeMs: 1000}},
		{"zero speed", ProjectileDefinition{ID: "X", Behavior: BehaviorStraight, Speed: 0, LifetimeMs: 1000}},
		{"zero lifetime", ProjectileDefinition{ID: "X", Behavior: BehaviorStraight, Speed: 240, LifetimeMs: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saveLibraries(t)
			path := writeJSON(t, "projectiles.json", []ProjectileDefinition{tc.def})
			if err := LoadProjectileDefinitions(path); err == nil {
				t.Error("invalid definition accepted")
			}
		})
	}
}

func TestLoadProjectileDefinitions_MissingFile(t *testing.T) {
	saveLibraries(t)
	if err := LoadProjectileDefinitions(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadEnemyDefinitions_NormalizesDefaults(t *testing.T) {
	saveLibraries(t)
	path := writeJSON(t, "enemies.json", []EnemyDefinition{
		{
			ID:           "MINIMAL",
			Health:       2,
			Movement:     MovementPattern{Type: MoveStraight, Speed: 60},
			Fire:         FirePattern{Type: FireInterval, IntervalMs: 500},
			ProjectileID: "PROJ_SHOT",
		},
	})

	if err := LoadEnemyDefinitions(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	def := EnemyLibrary["MINIMAL"]
	if len(def.MuzzleOffsets) != 1 || def.MuzzleOffsets[0] != (Offset{}) {
		t.Errorf("expected a single zero muzzle offset, got %v", def.MuzzleOffsets)
	}
	if def.Fire.BurstCount != 1 {
		t.Errorf("expected burst count default 1, got %d", def.Fire.BurstCount)
	}
	if def.Scale != 1 || def.Visuals.RadiusFactor != 1 {
		t.Errorf("expected scale defaults 1, got scale=%v radius_factor=%v", def.Scale, def.Visuals.RadiusFactor)
	}
}

func TestLoadEnemyDefinitions_RejectsDanglingReferences(t *testing.T) {
	t.Run("projectile", func(t *testing.T) {
		saveLibraries(t)
		path := writeJSON(t, "enemies.json", []EnemyDefinition{
			{
				ID:           "DANGLING",
				Health:       2,
				Movement:     MovementPattern{Type: MoveStraight, Speed: 60},
				Fire:         FirePattern{Type: FireInterval, IntervalMs: 500},
				ProjectileID: "PROJ_NO_SUCH",
			},
		})
		if err := LoadEnemyDefinitions(path); err == nil {
			t.Error("dangling projectile reference accepted")
		}
	})
	t.Run("effect", func(t *testing.T) {
		saveLibraries(t)
		path := writeJSON(t, "enemies.json", []EnemyDefinition{
			{
				ID:       "DANGLING_FX",
				Health:   2,
				Movement: MovementPattern{Type: MoveStraight, Speed: 60},
				EffectID: "FX_NO_SUCH",
			},
		})
		if err := LoadEnemyDefinitions(path); err == nil {
			t.Error("dangling effect reference accepted")
		}
	})
}

func TestValidateEnemyDefinition_Rejections(t *testing.T) {
	ceiling := -5.0
	base := func() EnemyDefinition {
		return EnemyDefinition{
			ID:            "CASE",
			Health:        2,
			Movement:      MovementPattern{Type: MoveStraight, Speed: 60},
			MuzzleOffsets: []Offset{{}},
			Scale:         1,
			Visuals:       Visuals{RadiusFactor: 1},
		}
	}

	cases := []struct {
		name   string
		mutate func(*EnemyDefinition)
	}{
		{"zero health", func(d *EnemyDefinition) { d.Health = 0 }},
		{"unknown movement", func(d *EnemyDefinition) { d.Movement.Type = "TELEPORT" }},
		{"sine without frequency", func(d *EnemyDefinition) { d.Movement.Type = MoveSine }},
		{"negative hover ceiling", func(d *EnemyDefinition) {
			d.Movement.Type = MoveHover
			d.Movement.CeilingY = &ceiling
		}},
		{"zero movement speed", func(d *EnemyDefinition) { d.Movement.Speed = 0 }},
		{"unknown fire type", func(d *EnemyDefinition) { d.Fire.Type = "BEAM" }},
		{"interval fire without interval", func(d *EnemyDefinition) {
			d.Fire = FirePattern{Type: FireInterval}
			d.ProjectileID = "PROJ_SHOT"
		}},
		{"torpedo without homing", func(d *EnemyDefinition) {
			d.Fire = FirePattern{Type: FireTorpedo, IntervalMs: 800}
			d.ProjectileID = "PROJ_TORPEDO"
		}},
		{"bomb without gravity", func(d *EnemyDefinition) {
			d.Fire = FirePattern{Type: FireBomb, IntervalMs: 900}
			d.ProjectileID = "PROJ_BOMB"
		}},
		{"firing without projectile", func(d *EnemyDefinition) {
			d.Fire = FirePattern{Type: FireInterval, IntervalMs: 500}
		}},
		{"unknown script type", func(d *EnemyDefinition) {
			d.Script = &ScriptedSequence{Type: "DIVE_BOMB", TopY: 72, ShotCount: 6, IntervalMs: 1000}
			d.ProjectileID = "PROJ_SHOT"
		}},
		{"script without shots", func(d *EnemyDefinition) {
			d.Script = &ScriptedSequence{Type: ScriptBurstAtTop, TopY: 72, IntervalMs: 1000}
			d.ProjectileID = "PROJ_SHOT"
		}},
		{"zero retreat speed", func(d *EnemyDefinition) {
			d.Retreat = &RetreatBehavior{Speed: 0, DelayMs: 1200}
		}},
		{"negative retreat delay", func(d *EnemyDefinition) {
			d.Retreat = &RetreatBehavior{Speed: 140, DelayMs: -1}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := base()
			tc.mutate(&def)
			if err := ValidateEnemyDefinition(def); err == nil {
				t.Error("invalid definition accepted")
			}
		})
	}
}

// TestBuiltInLibrariesValidate keeps the shipped content honest: every
// built-in definition passes the same validation as loaded content.
func TestBuiltInLibrariesValidate(t *testing.T) {
	for id, def := range ProjectileLibrary {
		if err := ValidateProjectileDefinition(def); err != nil {
			t.Errorf("built-in projectile %s: %v", id, err)
		}
	}
	for id, def := range EnemyLibrary {
		if err := ValidateEnemyDefinition(def); err != nil {
			t.Errorf("built-in enemy %s: %v", id, err)
		}
	}
}
