package frames

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"imu-attitude/internal/rotation"
	"imu-attitude/internal/telemetry"
)

// ManifestEntry describes one rendered frame for downstream consumers
// (video assembly, web viewers). Angles are whole degrees for display.
type ManifestEntry struct {
	Index      int     `json:"index"`
	T          float64 `json:"t"`
	File       string  `json:"file"`
	RollDeg    int     `json:"roll_deg"`
	PitchDeg   int     `json:"pitch_deg"`
	YawDeg     int     `json:"yaw_deg"`
	AzimuthDeg int     `json:"azimuth_deg"`
}

// WriteManifest writes manifest.json next to the rendered frames.
func WriteManifest(path string, samples []telemetry.Sample) error {
	entries := make([]ManifestEntry, len(samples))
	for i, s := range samples {
		e := rotation.QuatToEuler(rotation.QuatFromArray(s.Q).Normalize())
		entries[i] = ManifestEntry{
			Index:      i,
			T:          s.T,
			File:       fmt.Sprintf("frame_%05d.webp", i),
			RollDeg:    rotation.IntDeg(e.Roll),
			PitchDeg:   rotation.IntDeg(e.Pitch),
			YawDeg:     rotation.IntDeg(e.Yaw),
			AzimuthDeg: rotation.IntDeg(e.Azimuth()),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("frames: marshal manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("frames: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("frames: write %s: %w", path, err)
	}
	return nil
}
