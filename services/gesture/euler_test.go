package gesture

import (
	"math"
	"testing"

	"airdrums-go/types"
)

func TestQuaternionToEulerIdentity(t *testing.T) {
	roll, pitch, yaw := quaternionToEuler(types.Quaternion{Real: 1})
	if roll != 0 || pitch != 0 || yaw != 0 {
		t.Errorf("identity gave %v/%v/%v", roll, pitch, yaw)
	}
}

func TestQuaternionToEulerYaw90(t *testing.T) {
	s := math.Sqrt2 / 2
	_, _, yaw := quaternionToEuler(types.Quaternion{Real: s, K: s})
	if math.Abs(yaw-90) > 1e-9 {
		t.Errorf("yaw = %v, want 90", yaw)
	}
}

func TestQuaternionToEulerRoll90(t *testing.T) {
	s := math.Sqrt2 / 2
	roll, _, _ := quaternionToEuler(types.Quaternion{Real: s, I: s})
	if math.Abs(roll-90) > 1e-9 {
		t.Errorf("roll = %v, want 90", roll)
	}
}

func TestPitchClampsOutsideArcsineDomain(t *testing.T) {
	// Denormalized input can push the arcsine argument past ±1; the
	// conversion clamps to ±90 instead of returning NaN.
	_, pitch, _ := quaternionToEuler(types.Quaternion{Real: 0.8, J: 0.8})
	if pitch != 90 {
		t.Errorf("pitch = %v, want clamp to 90", pitch)
	}
	_, pitch, _ = quaternionToEuler(types.Quaternion{Real: 0.8, J: -0.8})
	if pitch != -90 {
		t.Errorf("pitch = %v, want clamp to -90", pitch)
	}
	if math.IsNaN(pitch) {
		t.Errorf("pitch is NaN")
	}
}
