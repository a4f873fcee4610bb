package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"imu-attitude/internal/rotation"
)

// parseQuat parses "w,x,y,z" into a component slice. Components that
// don't parse become part of a wrong-length slice, which QuatFromArray
// turns into the identity fallback.
func parseQuat(arg string) []float64 {
	parts := strings.Split(arg, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: quatdiff <w,x,y,z> <w,x,y,z>")
		fmt.Fprintln(os.Stderr, "Prints the rotation taking the first orientation to the second.")
		os.Exit(1)
	}

	a := rotation.QuatFromArray(parseQuat(os.Args[1])).Normalize()
	b := rotation.QuatFromArray(parseQuat(os.Args[2])).Normalize()

	d := rotation.Diff(a, b)
	angle := d.RotationAngle()

	fmt.Printf("a     = %v\n", a.Array())
	fmt.Printf("b     = %v\n", b.Array())
	fmt.Printf("diff  = %v\n", d.Array())
	fmt.Printf("angle = %.6f rad (%d°)\n", angle, rotation.IntDeg(angle))
}
