package utils

import (
	"math"
	"testing"
)

// tolerance for floating point comparisons
const floatTolerance = 0.0001

// almostEqual checks if two floats are approximately equal
func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// TestTargetAngle_TargetDirectlyBelow tests angle when target is directly below
func TestTargetAngle_TargetDirectlyBelow(t *testing.T) {
	angle := TargetAngle(100, 100, 100, 200)
	if !almostEqual(angle, 0, floatTolerance) {
		t.Errorf("Expected angle 0 for target directly below, got %f", angle)
	}
}

// TestTargetAngle_TargetDirectlyAbove tests angle when target is directly above
func TestTargetAngle_TargetDirectlyAbove(t *testing.T) {
	angle := TargetAngle(100, 200, 100, 100)
	if !almostEqual(math.Abs(angle), math.Pi, floatTolerance) {
		t.Errorf("Expected angle ±π for target directly above, got %f", angle)
	}
}

// TestTargetAngle_TargetDirectlyRight tests angle when target is directly to the right
func TestTargetAngle_TargetDirectlyRight(t *testing.T) {
	angle := TargetAngle(100, 100, 200, 100)
	if !almostEqual(angle, math.Pi/2, floatTolerance) {
		t.Errorf("Expected angle π/2 for target directly right, got %f", angle)
	}
}

// TestTargetAngle_TargetDirectlyLeft tests angle when target is directly to the left
func TestTargetAngle_TargetDirectlyLeft(t *testing.T) {
	angle := TargetAngle(200, 100, 100, 100)
	if !almostEqual(angle, -math.Pi/2, floatTolerance) {
		t.Errorf("Expected angle -π/2 for target directly left, got %f", angle)
	}
}

// TestTargetAngle_TargetLowerRight tests angle for diagonal lower-right
func TestTargetAngle_TargetLowerRight(t *testing.T) {
	angle := TargetAngle(100, 100, 200, 200)
	if !almostEqual(angle, math.Pi/4, floatTolerance) {
		t.Errorf("Expected angle π/4 for diagonal lower-right, got %f", angle)
	}
}

// TestVelocityFromAngle_Down tests decomposition of a downward heading
func TestVelocityFromAngle_Down(t *testing.T) {
	vx, vy := VelocityFromAngle(0, 100)
	if !almostEqual(vx, 0, floatTolerance) || !almostEqual(vy, 100, floatTolerance) {
		t.Errorf("Expected (0, 100) for angle 0, got (%f, %f)", vx, vy)
	}
}

// TestVelocityFromAngle_Right tests decomposition of a rightward heading
func TestVelocityFromAngle_Right(t *testing.T) {
	vx, vy := VelocityFromAngle(math.Pi/2, 100)
	if !almostEqual(vx, 100, floatTolerance) || !almostEqual(vy, 0, floatTolerance) {
		t.Errorf("Expected (100, 0) for angle π/2, got (%f, %f)", vx, vy)
	}
}

// TestNormalizeAngle_WrapsPositive tests wrapping of angles above π
func TestNormalizeAngle_WrapsPositive(t *testing.T) {
	angle := NormalizeAngle(math.Pi + 0.5)
	expected := -math.Pi + 0.5
	if !almostEqual(angle, expected, floatTolerance) {
		t.Errorf("Expected %f, got %f", expected, angle)
	}
}

// TestNormalizeAngle_WrapsNegative tests wrapping of angles below -π
func TestNormalizeAngle_WrapsNegative(t *testing.T) {
	angle := NormalizeAngle(-math.Pi - 0.5)
	expected := math.Pi - 0.5
	if !almostEqual(angle, expected, floatTolerance) {
		t.Errorf("Expected %f, got %f", expected, angle)
	}
}

// TestRotateToward_ClampsToMaxStep tests that a turn is limited by maxStep
func TestRotateToward_ClampsToMaxStep(t *testing.T) {
	got := RotateToward(0, 1.0, 0.05)
	if !almostEqual(got, 0.05, floatTolerance) {
		t.Errorf("Expected rotation clamped to 0.05, got %f", got)
	}
}

// TestRotateToward_ReachesTargetExactly tests that a small diff is not overshot
func TestRotateToward_ReachesTargetExactly(t *testing.T) {
	got := RotateToward(0.02, 0.03, 0.05)
	if !almostEqual(got, 0.03, floatTolerance) {
		t.Errorf("Expected exact target 0.03, got %f", got)
	}
}

// TestRotateToward_TakesShortestPath tests rotation across the ±π seam
func TestRotateToward_TakesShortestPath(t *testing.T) {
	// From just below +π to just above -π the short way is through the seam.
	got := RotateToward(math.Pi-0.01, -math.Pi+0.01, 0.05)
	diff := math.Abs(NormalizeAngle(got - (-math.Pi + 0.01)))
	if diff > 0.0001 {
		t.Errorf("Expected rotation through the seam to land on target, got %f", got)
	}
}

// TestRotateToward_NegativeDirection tests turning counter-clockwise
func TestRotateToward_NegativeDirection(t *testing.T) {
	got := RotateToward(0.5, -0.5, 0.1)
	if !almostEqual(got, 0.4, floatTolerance) {
		t.Errorf("Expected 0.4, got %f", got)
	}
}

// TestLerp_Midpoint tests linear interpolation at t=0.5
func TestLerp_Midpoint(t *testing.T) {
	if got := Lerp(0, 30, 0.5); !almostEqual(got, 15, floatTolerance) {
		t.Errorf("Expected 15, got %f", got)
	}
}
