package telemetry

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sample is one logged attitude frame: seconds since capture start plus
// the raw quaternion exactly as it came off the serial line, [w,x,y,z].
// The quaternion is kept as a plain slice so downstream code exercises
// the same array adapters the live estimation stage uses.
type Sample struct {
	T float64
	Q []float64
}

// ReadCapture parses a serial-capture file: one "t,w,x,y,z" line per
// sample. Lines that don't parse (headers, partial writes, line noise)
// are skipped rather than failing the run; a capture with zero valid
// samples is an error.
func ReadCapture(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	var samples []Sample
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 5 {
			continue
		}
		vals := make([]float64, 0, 5)
		ok := true
		for _, fv := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(fv), 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			continue
		}
		samples = append(samples, Sample{T: vals[0], Q: vals[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("telemetry: read %s: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("telemetry: no samples in %s", path)
	}
	return samples, nil
}
