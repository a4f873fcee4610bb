package rotation

import "math"

// Quat is a rotation quaternion (w, x, y, z), scalar part first.
// Value type; every operation returns a new value and never mutates.
// Unnormalized quaternions are representable; Normalize is explicit.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity returns the no-rotation quaternion (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromArray builds a quaternion from [w, x, y, z].
// Anything other than exactly 4 elements yields the identity quaternion:
// the upstream estimation stage may hand over a malformed array, and a
// one-frame fallback to identity beats halting its polling loop.
func QuatFromArray(a []float64) Quat {
	if len(a) != 4 {
		return QuatIdentity()
	}
	return Quat{W: a[0], X: a[1], Y: a[2], Z: a[3]}
}

// EulerToQuat converts roll/pitch/yaw (radians, ZYX intrinsic) to a
// quaternion using the half-angle formula.
func EulerToQuat(e Euler) Quat {
	cy, sy := math.Cos(e.Yaw*0.5), math.Sin(e.Yaw*0.5)
	cp, sp := math.Cos(e.Pitch*0.5), math.Sin(e.Pitch*0.5)
	cr, sr := math.Cos(e.Roll*0.5), math.Sin(e.Roll*0.5)

	return Quat{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Array returns [w, x, y, z]. Inverse of QuatFromArray for well-formed input.
func (q Quat) Array() []float64 {
	return []float64{q.W, q.X, q.Y, q.Z}
}

// Norm returns the 4-component Euclidean norm.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion with the same direction.
// The zero quaternion has no direction; it maps to identity rather
// than dividing by zero.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n <= 0 {
		return QuatIdentity()
	}
	inv := 1 / n
	return Quat{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// Conjugate returns (w, -x, -y, -z).
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Mul returns the Hamilton product q × o. Not commutative.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Diff returns the rotation taking orientation a to orientation b:
// conj(a) × b. Order matters; Diff(a, b) and Diff(b, a) differ in general.
func Diff(a, b Quat) Quat {
	return a.Conjugate().Mul(b)
}

// RotationAngle returns the total rotation angle in radians, range [0, π].
// Works on a normalized copy; q itself is untouched. The acos argument is
// clamped to [-1, 1] so rounding on a freshly normalized w cannot go NaN.
func (q Quat) RotationAngle() float64 {
	w := q.Normalize().W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	return 2 * math.Acos(w)
}
