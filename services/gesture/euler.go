package gesture

import (
	"math"

	"airdrums-go/types"
	"airdrums-go/x/mathx"
)

// quaternionToEuler converts a rotation quaternion to roll/pitch/yaw in
// degrees. Pitch clamps to ±90° when the arcsine argument leaves [-1,1],
// which happens with slightly denormalized input near the poles.
func quaternionToEuler(q types.Quaternion) (roll, pitch, yaw float64) {
	sinrCosp := 2 * (q.Real*q.I + q.J*q.K)
	cosrCosp := 1 - 2*(q.I*q.I+q.J*q.J)
	roll = mathx.Deg(math.Atan2(sinrCosp, cosrCosp))

	sinp := 2 * (q.Real*q.J - q.K*q.I)
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(90, sinp)
	} else {
		pitch = mathx.Deg(math.Asin(sinp))
	}

	sinyCosp := 2 * (q.Real*q.K + q.I*q.J)
	cosyCosp := 1 - 2*(q.J*q.J+q.K*q.K)
	yaw = mathx.Deg(math.Atan2(sinyCosp, cosyCosp))
	return roll, pitch, yaw
}
