// internal/defs/effects.go
package defs

import "image/color"

// EffectDefinition describes a one-shot destruction effect. The enemy
// definition refers to effects by ID; the mapping is validated at load time
// so a missing effect can never surface mid-tick.
type EffectDefinition struct {
	ID         string     `json:"id"`
	DurationMs int        `json:"duration_ms"`
	MaxRadius  float64    `json:"max_radius"`
	Color      color.RGBA `json:"color"`
}

// DurationSeconds returns the effect duration in seconds.
func (e EffectDefinition) DurationSeconds() float64 {
	return float64(e.DurationMs) / 1000.0
}

// EffectLibrary is the library of all destruction effects, mapped by their ID.
var EffectLibrary map[string]EffectDefinition
