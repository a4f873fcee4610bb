package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"imu-attitude/internal/config"
	"imu-attitude/internal/frames"
	"imu-attitude/internal/gauge"
	"imu-attitude/internal/telemetry"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	capture := flag.String("capture", "", "Path to capture file (t,w,x,y,z per line)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	face := flag.String("face", "", "Optional dial face image (PNG/JPEG/TGA)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Render only first N samples for testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Capture:   *capture,
		OutputDir: *outputDir,
		DialFace:  *face,
		Size:      *size,
		Workers:   *workers,
	})

	if cfg.CapturePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no capture file. Use -capture flag or config.json.")
		os.Exit(1)
	}

	samples, err := telemetry.ReadCapture(cfg.CapturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(samples) {
		samples = samples[:*testN]
	}

	frameCfg := frames.Config{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.FrameSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	if cfg.DialFace != "" {
		frameCfg.Face, err = gauge.LoadFace(cfg.DialFace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dial face: %v\n", err)
		}
	}

	mode := ""
	if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}
	fmt.Printf("Attitude Capture → WebP Gauge Frames%s\n", mode)
	fmt.Printf("Samples: %d, Workers: %d\n", len(samples), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := frames.Run(frameCfg, samples)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []frames.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(samples))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Index, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := frames.WriteManifest(manifestPath, samples); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
