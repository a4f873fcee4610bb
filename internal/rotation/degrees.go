package rotation

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to decimal degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// IntDeg converts radians to the nearest whole degree.
func IntDeg(r float64) int {
	return int(math.Round(Rad2Deg(r)))
}
