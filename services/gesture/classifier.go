// Package gesture turns the decoded orientation/angular-rate stream into
// discrete drum-hit events. It keeps a running attitude estimate from the
// quaternion reports and a one-shot latch on the monitored gyro axis.
package gesture

import (
	"github.com/rs/zerolog"

	"airdrums-go/types"
	"airdrums-go/x/mathx"
)

// Config tunes the classifier. Zero values take the shipped defaults.
type Config struct {
	// HitThreshold in raw milli-rad/s. A sample strictly below it while
	// the latch is clear counts as a strike.
	HitThreshold int32
	// YawOffsetDeg is the initial calibration offset.
	YawOffsetDeg float64
}

// rawScale converts the hub's rad/s float into the raw integer scale the
// threshold is expressed in.
const rawScale = 1000

// Classifier owns the hit latch and the last-known orientation. It is
// touched from the single control thread only.
type Classifier struct {
	threshold int32
	yawOffset float64

	orient types.Orientation

	// latched is the one-shot state: a strike arms it, and it releases
	// only once the axis rate returns to or above the threshold. The same
	// value gates both trigger and release, so a rate oscillating around
	// the threshold can re-emit; this matches the deployed behavior and
	// is left as-is.
	latched bool

	last types.Category
	log  zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Classifier {
	if cfg.HitThreshold == 0 {
		cfg.HitThreshold = -2500
	}
	return &Classifier{
		threshold: cfg.HitThreshold,
		yawOffset: cfg.YawOffsetDeg,
		last:      types.CategoryNone,
		log:       log,
	}
}

// Feed consumes one decoded sample and returns the category of a newly
// detected hit, or CategoryNone. A nil or unknown sample is a no-op.
func (c *Classifier) Feed(s *types.SensorSample) types.Category {
	if s == nil {
		return types.CategoryNone
	}
	switch s.Kind {
	case types.SensorRotation:
		c.updateOrientation(s.Q)
		return types.CategoryNone
	case types.SensorGyro:
		return c.updateRate(s.Gyro)
	default:
		return types.CategoryNone
	}
}

func (c *Classifier) updateOrientation(q types.Quaternion) {
	roll, pitch, yaw := quaternionToEuler(q)
	c.orient = types.Orientation{
		Roll:   roll,
		Pitch:  pitch,
		Yaw:    mathx.Wrap360(yaw - c.yawOffset),
		Source: types.SourceQuaternion,
	}
}

func (c *Classifier) updateRate(g types.Vec3) types.Category {
	// Only the Y axis is monitored: the strike is a wrist snap about the
	// stick's lateral axis.
	raw := int32(g.Y * rawScale)

	switch {
	case raw < c.threshold && !c.latched:
		c.latched = true
		cat := classifyZone(c.orient.Yaw, c.orient.Pitch)
		if cat == types.CategoryNone {
			c.log.Debug().
				Float64("yaw", c.orient.Yaw).
				Float64("pitch", c.orient.Pitch).
				Msg("hit outside every zone")
			return types.CategoryNone
		}
		c.last = cat
		c.log.Info().
			Str("drum", cat.String()).
			Int32("rate", raw).
			Float64("yaw", c.orient.Yaw).
			Float64("pitch", c.orient.Pitch).
			Msg("hit")
		return cat
	case raw >= c.threshold && c.latched:
		c.latched = false
	}
	return types.CategoryNone
}

// SetYawOffset overwrites the calibration offset. It takes effect on the
// next orientation sample; the stored estimate is left alone.
func (c *Classifier) SetYawOffset(deg float64) { c.yawOffset = deg }

// YawOffset returns the current calibration offset in degrees.
func (c *Classifier) YawOffset() float64 { return c.yawOffset }

// Orientation returns the last stored attitude estimate.
func (c *Classifier) Orientation() types.Orientation { return c.orient }

// LastCategory returns the most recently emitted hit category.
func (c *Classifier) LastCategory() types.Category { return c.last }
