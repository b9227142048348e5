// internal/defs/defaults.go
package defs

import "image/color"

func init() {
	// Built-in content. JSON files loaded through loader.go replace these
	// libraries wholesale; the shipped game runs on the built-ins.
	ProjectileLibrary = map[string]ProjectileDefinition{}
	for _, def := range defaultProjectiles() {
		ProjectileLibrary[def.ID] = def
	}

	EffectLibrary = map[string]EffectDefinition{}
	for _, def := range defaultEffects() {
		EffectLibrary[def.ID] = def
	}

	EnemyLibrary = map[string]EnemyDefinition{}
	for _, def := range defaultEnemies() {
		normalizeEnemyDefinition(&def)
		EnemyLibrary[def.ID] = def
	}
}

func defaultProjectiles() []ProjectileDefinition {
	return []ProjectileDefinition{
		{
			ID:         "PROJ_SHOT",
			Behavior:   BehaviorStraight,
			Speed:      240,
			LifetimeMs: 4000,
			Damage:     1,
			Color:      color.RGBA{R: 255, G: 180, B: 80, A: 255},
		},
		{
			ID:           "PROJ_TORPEDO",
			Behavior:     BehaviorHoming,
			Speed:        200,
			LifetimeMs:   3500,
			Damage:       1,
			Destructible: true,
			HitPoints:    1,
			Color:        color.RGBA{R: 255, G: 90, B: 90, A: 255},
		},
		{
			ID:         "PROJ_BOMB",
			Behavior:   BehaviorBomb,
			Speed:      90,
			LifetimeMs: 2500,
			Damage:     2,
			Scale:      1.4,
			Color:      color.RGBA{R: 180, G: 180, B: 60, A: 255},
		},
	}
}

func defaultEffects() []EffectDefinition {
	return []EffectDefinition{
		{ID: "FX_EXPLOSION_SMALL", DurationMs: 300, MaxRadius: 18, Color: color.RGBA{R: 255, G: 170, B: 60, A: 255}},
		{ID: "FX_EXPLOSION_MEDIUM", DurationMs: 450, MaxRadius: 30, Color: color.RGBA{R: 255, G: 130, B: 50, A: 255}},
		{ID: "FX_EXPLOSION_LARGE", DurationMs: 600, MaxRadius: 46, Color: color.RGBA{R: 255, G: 90, B: 40, A: 255}},
	}
}

func defaultEnemies() []EnemyDefinition {
	hoverCeiling := 120.0
	return []EnemyDefinition{
		{
			ID:     "ENEMY_FIGHTER",
			Name:   "Fighter",
			Health: 3,
			Score:  100,
			Movement: MovementPattern{
				Type:        MoveSine,
				Speed:       90,
				Amplitude:   60,
				FrequencyHz: 0.5,
			},
			Fire: FirePattern{
				Type:       FireInterval,
				IntervalMs: 1400,
				BurstCount: 1,
				Aimed:      true,
			},
			ProjectileID: "PROJ_SHOT",
			EffectID:     "FX_EXPLOSION_SMALL",
			Visuals:      Visuals{Color: color.RGBA{R: 90, G: 200, B: 120, A: 255}, RadiusFactor: 1.0},
		},
		{
			ID:     "ENEMY_GUNSHIP",
			Name:   "Gunship",
			Health: 8,
			Score:  250,
			Movement: MovementPattern{
				Type:     MoveHover,
				Speed:    70,
				CeilingY: &hoverCeiling,
			},
			Fire: FirePattern{
				Type:       FireInterval,
				IntervalMs: 1800,
				BurstCount: 3,
				SpreadDeg:  12,
				TotalShots: 4,
			},
			ProjectileID:  "PROJ_SHOT",
			Retreat:       &RetreatBehavior{Speed: 140, DelayMs: 1200},
			MuzzleOffsets: []Offset{{X: -10, Y: 6}, {X: 10, Y: 6}},
			EffectID:      "FX_EXPLOSION_MEDIUM",
			Visuals:       Visuals{Color: color.RGBA{R: 200, G: 120, B: 220, A: 255}, RadiusFactor: 1.3, StrokeWidth: 2},
		},
		{
			ID:     "ENEMY_TORPEDO_BOAT",
			Name:   "Torpedo Boat",
			Health: 5,
			Score:  200,
			Movement: MovementPattern{
				Type:  MoveStraight,
				Speed: 60,
			},
			Fire: FirePattern{
				Type:       FireTorpedo,
				IntervalMs: 2600,
				Homing:     &HomingParams{TurnRateRad: 0.05, Accel: 2},
			},
			ProjectileID: "PROJ_TORPEDO",
			EffectID:     "FX_EXPLOSION_MEDIUM",
			Visuals:      Visuals{Color: color.RGBA{R: 120, G: 140, B: 255, A: 255}, RadiusFactor: 1.1},
		},
		{
			ID:     "ENEMY_BOMBER",
			Name:   "Bomber",
			Health: 4,
			Score:  150,
			Movement: MovementPattern{
				Type:     MoveDive,
				Speed:    120,
				AngleDeg: 25,
			},
			Fire: FirePattern{
				Type:       FireBomb,
				IntervalMs: 2000,
				Gravity:    220,
			},
			ProjectileID: "PROJ_BOMB",
			EffectID:     "FX_EXPLOSION_SMALL",
			Visuals:      Visuals{Color: color.RGBA{R: 230, G: 190, B: 80, A: 255}, RadiusFactor: 1.1},
		},
		{
			ID:     "ENEMY_RAIDER",
			Name:   "Raider",
			Health: 6,
			Score:  300,
			Movement: MovementPattern{
				Type:  MoveStraight,
				Speed: 110,
			},
			Fire: FirePattern{Type: FireNone},
			Script: &ScriptedSequence{
				Type:       ScriptBurstAtTop,
				TopY:       72,
				ShotCount:  6,
				IntervalMs: 1000,
			},
			ProjectileID: "PROJ_SHOT",
			EffectID:     "FX_EXPLOSION_LARGE",
			Visuals:      Visuals{Color: color.RGBA{R: 255, G: 110, B: 110, A: 255}, RadiusFactor: 1.2, StrokeWidth: 2},
		},
	}
}
