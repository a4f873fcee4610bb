package main

import (
	"flag"
	"fmt"
	"os"

	"imu-attitude/internal/rotation"
	"imu-attitude/internal/telemetry"
)

func parseAngle(name string) (rotation.Angle, bool) {
	switch name {
	case "roll":
		return rotation.AngleRoll, true
	case "pitch":
		return rotation.AnglePitch, true
	case "yaw":
		return rotation.AngleYaw, true
	case "azimuth":
		return rotation.AngleAzimuth, true
	}
	return 0, false
}

func main() {
	capture := flag.String("capture", "", "Path to capture file (t,w,x,y,z per line)")
	angleName := flag.String("angle", "", "Print only this angle: roll|pitch|yaw|azimuth")
	rad := flag.Bool("rad", false, "Print radians instead of degrees")
	flag.Parse()

	path := *capture
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: readout [-angle roll|pitch|yaw|azimuth] [-rad] <capture file>")
		os.Exit(1)
	}

	var sel rotation.Angle
	single := *angleName != ""
	if single {
		var ok bool
		sel, ok = parseAngle(*angleName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown angle %q\n", *angleName)
			os.Exit(1)
		}
	}

	samples, err := telemetry.ReadCapture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, s := range samples {
		q := rotation.QuatFromArray(s.Q).Normalize()
		e := rotation.QuatToEuler(q)

		if single {
			v := e.Angle(sel)
			if *rad {
				fmt.Printf("t=%8.3f  %s=%+9.5f rad\n", s.T, sel, v)
			} else {
				fmt.Printf("t=%8.3f  %s=%+8.2f°\n", s.T, sel, rotation.Rad2Deg(v))
			}
			continue
		}

		if *rad {
			fmt.Printf("t=%8.3f  roll=%+9.5f  pitch=%+9.5f  yaw=%+9.5f  az=%8.5f\n",
				s.T, e.Roll, e.Pitch, e.Yaw, e.Azimuth())
		} else {
			fmt.Printf("t=%8.3f  roll=%+8.2f°  pitch=%+8.2f°  yaw=%+8.2f°  az=%7.2f°\n",
				s.T, rotation.Rad2Deg(e.Roll), rotation.Rad2Deg(e.Pitch),
				rotation.Rad2Deg(e.Yaw), rotation.Rad2Deg(e.Azimuth()))
		}
	}
}
