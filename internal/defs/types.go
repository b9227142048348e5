// internal/defs/types.go
package defs

// MovementType selects the movement variant of an enemy definition.
type MovementType string

const (
	MoveStraight MovementType = "STRAIGHT"
	MoveSine     MovementType = "SINE"
	MoveHover    MovementType = "HOVER"
	MoveDive     MovementType = "DIVE"
)

// FireType selects the fire variant of an enemy definition.
type FireType string

const (
	FireNone     FireType = "NONE"
	FireInterval FireType = "INTERVAL"
	FireTorpedo  FireType = "TORPEDO"
	FireBomb     FireType = "BOMB"
)

// MovementPattern describes how an enemy moves. Exactly one variant is
// meaningful per definition; unused fields stay zero.
type MovementPattern struct {
	Type        MovementType `json:"type"`
	Speed       float64      `json:"speed"`
	Amplitude   float64      `json:"amplitude,omitempty"`    // SINE: horizontal swing in px/s
	FrequencyHz float64      `json:"frequency_hz,omitempty"` // SINE
	CeilingY    *float64     `json:"ceiling_y,omitempty"`    // HOVER: stop at this Y
	AngleDeg    float64      `json:"angle_deg,omitempty"`    // DIVE: 0 is straight down
}

// HomingParams tunes homing projectile steering.
type HomingParams struct {
	TurnRateRad float64 `json:"turn_rate_rad"` // max heading change per tick
	Accel       float64 `json:"accel"`         // speed gain per tick
}

// FirePattern describes how an enemy fires.
type FirePattern struct {
	Type         FireType      `json:"type"`
	IntervalMs   int           `json:"interval_ms,omitempty"`
	BurstCount   int           `json:"burst_count,omitempty"`
	SpreadDeg    float64       `json:"spread_deg,omitempty"`
	Aimed        bool          `json:"aimed,omitempty"`
	TotalShots   int           `json:"total_shots,omitempty"`    // 0 = unlimited volleys
	StartDelayMs int           `json:"start_delay_ms,omitempty"` // delays the first eligible shot
	Homing       *HomingParams `json:"homing,omitempty"`         // TORPEDO
	Gravity      float64       `json:"gravity,omitempty"`        // BOMB: px/s^2
}

// IntervalSeconds returns the fire interval in seconds.
func (f FirePattern) IntervalSeconds() float64 {
	return float64(f.IntervalMs) / 1000.0
}

// StartDelaySeconds returns the initial fire delay in seconds.
func (f FirePattern) StartDelaySeconds() float64 {
	return float64(f.StartDelayMs) / 1000.0
}

// ScriptType selects the scripted sequence variant.
type ScriptType string

const (
	// ScriptBurstAtTop: approach a Y line, fire an aimed burst, self-destruct.
	ScriptBurstAtTop ScriptType = "BURST_AT_TOP"
)

// ScriptedSequence overrides default movement and fire while active.
type ScriptedSequence struct {
	Type       ScriptType `json:"type"`
	TopY       float64    `json:"top_y"`
	ShotCount  int        `json:"shot_count"`
	IntervalMs int        `json:"interval_ms"`
	AfterSpeed float64    `json:"after_speed,omitempty"` // downward drift while holding before self-destruct
}

// IntervalSeconds returns the burst interval in seconds.
func (s ScriptedSequence) IntervalSeconds() float64 {
	return float64(s.IntervalMs) / 1000.0
}

// RetreatBehavior makes a unit leave the playfield once its shot budget is spent.
type RetreatBehavior struct {
	Speed   float64 `json:"speed"`
	DelayMs int     `json:"delay_ms"`
}

// DelaySeconds returns the pre-retreat hold in seconds.
func (r RetreatBehavior) DelaySeconds() float64 {
	return float64(r.DelayMs) / 1000.0
}

// Offset is a local-space point relative to a unit's position.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
