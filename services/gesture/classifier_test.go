package gesture

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"airdrums-go/types"
)

func newTestClassifier() *Classifier {
	return New(Config{}, zerolog.Nop())
}

func gyroY(radPerSec float64) *types.SensorSample {
	return &types.SensorSample{Kind: types.SensorGyro, Gyro: types.Vec3{Y: radPerSec}}
}

// orientAt feeds a rotation sample whose yaw/pitch land on the given
// values (yaw in degrees, pitch in degrees), built from a yaw-then-pitch
// quaternion.
func orientAt(t *testing.T, c *Classifier, yawDeg, pitchDeg float64) {
	t.Helper()
	cy := math.Cos(yawDeg * math.Pi / 360)
	sy := math.Sin(yawDeg * math.Pi / 360)
	cp := math.Cos(pitchDeg * math.Pi / 360)
	sp := math.Sin(pitchDeg * math.Pi / 360)
	// q = qz(yaw) * qy(pitch)
	q := types.Quaternion{
		Real: cy * cp,
		I:    -sy * sp,
		J:    cy * sp,
		K:    sy * cp,
	}
	if got := c.Feed(&types.SensorSample{Kind: types.SensorRotation, Q: q}); got != types.CategoryNone {
		t.Fatalf("orientation sample emitted a hit")
	}
	o := c.Orientation()
	if math.Abs(o.Yaw-yawDeg) > 0.5 || math.Abs(o.Pitch-pitchDeg) > 0.5 {
		t.Fatalf("orientation = yaw %.1f pitch %.1f, wanted %.1f/%.1f", o.Yaw, o.Pitch, yawDeg, pitchDeg)
	}
}

func TestLatchEmitsOnce(t *testing.T) {
	c := newTestClassifier()
	orientAt(t, c, 60, 0) // snare zone

	hits := 0
	for i := 0; i < 3; i++ {
		if c.Feed(gyroY(-3.0)) != types.CategoryNone {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("three below-threshold samples emitted %d hits, want 1", hits)
	}
}

func TestLatchReleasesAndRearms(t *testing.T) {
	c := newTestClassifier()
	orientAt(t, c, 60, 0)

	if c.Feed(gyroY(-3.0)) != types.CategorySnare {
		t.Fatalf("first strike not detected")
	}
	// Release: at-threshold-or-above clears the latch, emits nothing.
	if c.Feed(gyroY(0)) != types.CategoryNone {
		t.Errorf("release emitted a hit")
	}
	if c.Feed(gyroY(-3.0)) != types.CategorySnare {
		t.Errorf("re-strike after release not detected")
	}
}

func TestLatchExactThresholdDoesNotTrigger(t *testing.T) {
	c := newTestClassifier()
	orientAt(t, c, 60, 0)
	// -2500 raw is not strictly below the -2500 threshold.
	if c.Feed(gyroY(-2.5)) != types.CategoryNone {
		t.Errorf("at-threshold sample triggered")
	}
	if c.Feed(gyroY(-2.501)) != types.CategorySnare {
		t.Errorf("just-below-threshold sample did not trigger")
	}
}

func TestZoneMapping(t *testing.T) {
	cases := []struct {
		name       string
		yaw, pitch float64
		want       types.Category
	}{
		{"snare", 60, 0, types.CategorySnare},
		{"crash", 10, 60, types.CategoryCrash},
		{"high tom", 10, 10, types.CategoryHighTom},
		{"ride high", 320, 60, types.CategoryRide},
		{"mid tom", 320, 10, types.CategoryMidTom},
		{"ride floor", 250, 40, types.CategoryRide},
		{"low tom", 250, 10, types.CategoryLowTom},
		{"snare boundary", 20, 80, types.CategorySnare}, // priority over the split zone
		{"wrap zone", 350, 10, types.CategoryHighTom},
		{"dead zone", 150, 0, types.CategoryNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyZone(tc.yaw, tc.pitch); got != tc.want {
				t.Errorf("classifyZone(%v, %v) = %v, want %v", tc.yaw, tc.pitch, got, tc.want)
			}
		})
	}
}

func TestDeadZoneStrikeEmitsNothingButLatches(t *testing.T) {
	c := newTestClassifier()
	orientAt(t, c, 150, 0)

	if c.Feed(gyroY(-3.0)) != types.CategoryNone {
		t.Fatalf("dead-zone strike emitted a hit")
	}
	// The latch is armed even though nothing was emitted: one swing, one
	// evaluation.
	orientAt(t, c, 60, 0)
	if c.Feed(gyroY(-3.0)) != types.CategoryNone {
		t.Errorf("still-latched strike emitted a second hit")
	}
}

func TestYawOffsetAppliedOnNextSample(t *testing.T) {
	c := newTestClassifier()
	orientAt(t, c, 90, 0)

	c.SetYawOffset(30)
	if got := c.Orientation().Yaw; math.Abs(got-90) > 0.5 {
		t.Errorf("stored yaw changed immediately: %v", got)
	}
	// Same physical pose, next sample: yaw reads 60.
	cy := math.Cos(90 * math.Pi / 360)
	sy := math.Sin(90 * math.Pi / 360)
	c.Feed(&types.SensorSample{Kind: types.SensorRotation, Q: types.Quaternion{Real: cy, K: sy}})
	if got := c.Orientation().Yaw; math.Abs(got-60) > 0.5 {
		t.Errorf("offset yaw = %v, want 60", got)
	}
}

func TestYawOffsetNormalizesWrap(t *testing.T) {
	c := newTestClassifier()
	c.SetYawOffset(30)
	// Physical yaw 0 with offset 30 lands at 330, not -30.
	c.Feed(&types.SensorSample{Kind: types.SensorRotation, Q: types.Quaternion{Real: 1}})
	if got := c.Orientation().Yaw; math.Abs(got-330) > 0.5 {
		t.Errorf("yaw = %v, want 330", got)
	}
}

func TestNilAndUnknownSamplesAreNoops(t *testing.T) {
	c := newTestClassifier()
	if c.Feed(nil) != types.CategoryNone {
		t.Errorf("nil sample emitted a hit")
	}
	if c.Feed(&types.SensorSample{Kind: types.SensorUnknown}) != types.CategoryNone {
		t.Errorf("unknown sample emitted a hit")
	}
	if c.latched {
		t.Errorf("no-op samples disturbed the latch")
	}
}
