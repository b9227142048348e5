// internal/defs/projectiles.go
package defs

import "image/color"

// ProjectileBehavior is the default spawn behavior of a projectile type,
// used when the fire call does not pick one explicitly.
type ProjectileBehavior string

const (
	BehaviorStraight ProjectileBehavior = "STRAIGHT"
	BehaviorAimed    ProjectileBehavior = "AIMED"
	BehaviorSpread   ProjectileBehavior = "SPREAD"
	BehaviorHoming   ProjectileBehavior = "HOMING"
	BehaviorBomb     ProjectileBehavior = "BOMB"
)

// ProjectileDefinition holds all the static data for a specific type of projectile.
type ProjectileDefinition struct {
	ID           string             `json:"id"`
	Behavior     ProjectileBehavior `json:"behavior"`
	Speed        float64            `json:"speed"`
	LifetimeMs   int                `json:"lifetime_ms"`
	Damage       int                `json:"damage"`
	Scale        float64            `json:"scale,omitempty"`
	Color        color.RGBA         `json:"color"`
	Destructible bool               `json:"destructible,omitempty"`
	HitPoints    int                `json:"hit_points,omitempty"` // destructible only; defaults to 1
}

// LifetimeSeconds returns the nominal lifetime in seconds.
func (p ProjectileDefinition) LifetimeSeconds() float64 {
	return float64(p.LifetimeMs) / 1000.0
}

// ProjectileLibrary is the library of all projectile definitions, mapped by their ID.
var ProjectileLibrary map[string]ProjectileDefinition

// RotationOffsets corrects for projectile art that is authored rotated
// relative to its travel direction. Keyed by projectile ID, radians.
// This is a presentation constant, not a physics quantity.
var RotationOffsets = map[string]float64{
	"PROJ_TORPEDO": 1.5707963267948966, // sprite nose points right, +90°
}

// RotationOffset returns the art rotation correction for a projectile type,
// or 0 when the art is authored nose-down.
func RotationOffset(projectileID string) float64 {
	return RotationOffsets[projectileID]
}
