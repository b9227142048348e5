// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Definitions are immutable once loaded; per-unit state lives in components.
type EnemyDefinition struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Health        int               `json:"health"`
	Score         int               `json:"score"`
	Movement      MovementPattern   `json:"movement"`
	Fire          FirePattern       `json:"fire"`
	ProjectileID  string            `json:"projectile_id,omitempty"`
	Script        *ScriptedSequence `json:"script,omitempty"`
	Retreat       *RetreatBehavior  `json:"retreat,omitempty"`
	BodyRadius    float64           `json:"body_radius,omitempty"` // collision sizing, passed through untouched
	Scale         float64           `json:"scale,omitempty"`
	MuzzleOffsets []Offset          `json:"muzzle_offsets,omitempty"` // defaults to one centered point
	EffectID      string            `json:"effect_id,omitempty"`      // death explosion; empty = silent removal
	Visuals       Visuals           `json:"visuals"`
}

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary map[string]EnemyDefinition
