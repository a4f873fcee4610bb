package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCapture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCapture(t *testing.T) {
	path := writeCapture(t, `# attitude capture, 2026-08-12
t,w,x,y,z
0.000,1,0,0,0
0.020,0.9990,0.0320,0.0210,0.0140
garbage line from a dropped byte
0.040,0.9975,0.05
0.060,0.9951,0.0631,0.0429,0.0521
`)
	samples, err := ReadCapture(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	if samples[0].T != 0 || samples[0].Q[0] != 1 {
		t.Fatalf("first sample: %+v", samples[0])
	}
	if samples[2].T != 0.060 || len(samples[2].Q) != 4 {
		t.Fatalf("last sample: %+v", samples[2])
	}
}

func TestReadCaptureEmpty(t *testing.T) {
	path := writeCapture(t, "t,w,x,y,z\n# nothing valid\n")
	if _, err := ReadCapture(path); err == nil {
		t.Fatal("expected error for capture with no samples")
	}
}

func TestReadCaptureMissingFile(t *testing.T) {
	if _, err := ReadCapture(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
