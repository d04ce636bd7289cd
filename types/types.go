package types

// ---- Percussion categories ----

// Category identifies one stored percussion voice. Values 0..7 index the
// waveform bank directly; CategoryNone is the "no hit" sentinel.
type Category uint8

const (
	CategorySnare   Category = 0
	CategoryHiHat   Category = 1
	CategoryKick    Category = 2
	CategoryHighTom Category = 3
	CategoryMidTom  Category = 4
	CategoryCrash   Category = 5
	CategoryRide    Category = 6
	CategoryLowTom  Category = 7

	CategoryNone Category = 0xFF
)

func (c Category) String() string {
	switch c {
	case CategorySnare:
		return "snare"
	case CategoryHiHat:
		return "hihat"
	case CategoryKick:
		return "kick"
	case CategoryHighTom:
		return "high_tom"
	case CategoryMidTom:
		return "mid_tom"
	case CategoryCrash:
		return "crash"
	case CategoryRide:
		return "ride"
	case CategoryLowTom:
		return "low_tom"
	default:
		return "none"
	}
}

// ParseCategory maps a name (as printed by String) back to a Category.
func ParseCategory(s string) (Category, bool) {
	for c := CategorySnare; c <= CategoryLowTom; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return CategoryNone, false
}

// ---- Decoded sensor samples ----

// SensorKind tags a decoded sample from the session layer.
type SensorKind uint8

const (
	SensorUnknown SensorKind = iota
	SensorRotation
	SensorGyro
)

// Quaternion is a unit rotation quaternion as delivered by the hub.
type Quaternion struct {
	Real, I, J, K float64
}

// Vec3 holds one angular-rate sample in rad/s per axis.
type Vec3 struct {
	X, Y, Z float64
}

// SensorSample is one decoded report from the sensor-hub session layer.
// Exactly one of Q/Gyro is meaningful, selected by Kind.
type SensorSample struct {
	Kind SensorKind
	Q    Quaternion
	Gyro Vec3
}

// ---- Orientation ----

// OrientationSource records which report produced an orientation value.
type OrientationSource uint8

const (
	SourceQuaternion OrientationSource = iota
	SourceGyro
)

// Orientation is the running attitude estimate kept by the classifier.
// Yaw is stored offset-corrected and normalized to [0,360).
type Orientation struct {
	Roll, Pitch, Yaw float64
	Source           OrientationSource
}

// ---- Playback ----

// Waveform is one stored percussion sample: raw DAC codes plus the rate
// they were recorded at.
type Waveform struct {
	Data []uint16
	Rate uint32 // samples per second
}
