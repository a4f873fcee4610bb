package rotation

import "math"

// Euler holds roll/pitch/yaw in radians, ZYX intrinsic convention.
// Values are not wrapped to any canonical range on construction;
// QuatToEuler always yields angles in the atan2/asin ranges.
type Euler struct {
	Roll, Pitch, Yaw float64
}

// EulerFromArray builds Euler angles from [roll, pitch, yaw].
// Wrong length yields the zero angles, same fallback policy as
// QuatFromArray.
func EulerFromArray(a []float64) Euler {
	if len(a) != 3 {
		return Euler{}
	}
	return Euler{Roll: a[0], Pitch: a[1], Yaw: a[2]}
}

// QuatToEuler extracts roll/pitch/yaw from a quaternion.
// The input is used as-is: normalize first if it may have drifted off
// unit norm. The asin argument is clamped so a slightly non-unit
// quaternion near pitch ±π/2 degrades gracefully instead of going NaN.
func QuatToEuler(q Quat) Euler {
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	return Euler{
		Roll:  math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)),
		Pitch: math.Asin(sinp),
		Yaw:   math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
	}
}

// Array returns [roll, pitch, yaw]. Azimuth is derived, never stored.
func (e Euler) Array() []float64 {
	return []float64{e.Roll, e.Pitch, e.Yaw}
}

// Azimuth maps yaw onto a compass-style heading in [0, 2π):
// positive yaw counts down from 2π, non-positive yaw negates.
// Continuous in value at yaw = 0.
func (e Euler) Azimuth() float64 {
	if e.Yaw > 0 {
		return 2*math.Pi - e.Yaw
	}
	return -e.Yaw
}
