package rotation

// Angle selects one scalar out of an attitude readout.
type Angle int

const (
	AngleRoll Angle = iota
	AnglePitch
	AngleYaw
	AngleAzimuth
)

func (a Angle) String() string {
	switch a {
	case AngleRoll:
		return "roll"
	case AnglePitch:
		return "pitch"
	case AngleYaw:
		return "yaw"
	case AngleAzimuth:
		return "azimuth"
	default:
		return "unknown"
	}
}

// Angle returns the selected angle in radians. An out-of-range selector
// reads as 0 rather than failing; the caller's display loop keeps
// running either way.
func (e Euler) Angle(sel Angle) float64 {
	switch sel {
	case AngleRoll:
		return e.Roll
	case AnglePitch:
		return e.Pitch
	case AngleYaw:
		return e.Yaw
	case AngleAzimuth:
		return e.Azimuth()
	default:
		return 0
	}
}
