package frames

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"imu-attitude/internal/telemetry"
)

func TestRunRendersAllFrames(t *testing.T) {
	dir := t.TempDir()
	samples := []telemetry.Sample{
		{T: 0, Q: []float64{1, 0, 0, 0}},
		{T: 0.02, Q: []float64{0.999, 0.032, 0.021, 0.014}},
		{T: 0.04, Q: []float64{0.7, 0.7, 0, 0}},
	}

	results := Run(Config{OutputDir: dir, Size: 32, Supersample: 1, Workers: 2}, samples)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", r.Index, r.Error)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Fatalf("frame %d not on disk: %v", r.Index, err)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "manifest.json")
	samples := []telemetry.Sample{
		{T: 0, Q: []float64{1, 0, 0, 0}},
		{T: 0.02, Q: []float64{0, 1, 0, 0}},
	}
	if err := WriteManifest(path, samples); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].RollDeg != 0 || entries[0].File != "frame_00000.webp" {
		t.Fatalf("identity entry: %+v", entries[0])
	}
	// (0,1,0,0) is a half-turn about X: roll ±180°.
	if r := entries[1].RollDeg; r != 180 && r != -180 {
		t.Fatalf("half-turn roll = %d", r)
	}
}
