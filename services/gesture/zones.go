package gesture

import "airdrums-go/types"

// classifyZone maps an offset-corrected yaw (degrees, [0,360)) and pitch
// to a percussion category. Zones are evaluated in priority order, so the
// shared boundary at 20° belongs to the snare zone. The two high zones
// split on pitch 50°, the floor zone on 30°: a raised wrist in those
// directions reaches for a cymbal instead of a drum head.
func classifyZone(yaw, pitch float64) types.Category {
	switch {
	case yaw >= 20 && yaw <= 120:
		return types.CategorySnare
	case yaw >= 340 || yaw < 20:
		if pitch > 50 {
			return types.CategoryCrash
		}
		return types.CategoryHighTom
	case yaw >= 305: // && yaw < 340
		if pitch > 50 {
			return types.CategoryRide
		}
		return types.CategoryMidTom
	case yaw >= 200: // && yaw < 305
		if pitch > 30 {
			return types.CategoryRide
		}
		return types.CategoryLowTom
	default:
		return types.CategoryNone
	}
}
