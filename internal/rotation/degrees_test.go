package rotation

import (
	"math"
	"testing"
)

func TestDegreeConversions(t *testing.T) {
	if got := IntDeg(math.Pi); got != 180 {
		t.Fatalf("IntDeg(π) = %d", got)
	}
	if d := math.Abs(Deg2Rad(180) - math.Pi); d > tol {
		t.Fatalf("Deg2Rad(180) off by %.3g", d)
	}
	if d := math.Abs(Rad2Deg(math.Pi/2) - 90); d > tol {
		t.Fatalf("Rad2Deg(π/2) off by %.3g", d)
	}
	// Round-to-nearest, not truncation.
	if got := IntDeg(Deg2Rad(89.6)); got != 90 {
		t.Fatalf("IntDeg(89.6°) = %d", got)
	}
	if got := IntDeg(Deg2Rad(-0.4)); got != 0 {
		t.Fatalf("IntDeg(-0.4°) = %d", got)
	}
}

func TestDegRadInverse(t *testing.T) {
	for _, d := range []float64{0, 1, -45, 270, 359.9} {
		if diff := math.Abs(Rad2Deg(Deg2Rad(d)) - d); diff > 1e-9 {
			t.Errorf("deg %g: round trip off by %.3g", d, diff)
		}
	}
}
