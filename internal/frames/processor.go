package frames

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"imu-attitude/internal/gauge"
	"imu-attitude/internal/rotation"
	"imu-attitude/internal/telemetry"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds shared resources for a frame-rendering run.
type Config struct {
	OutputDir   string
	Size        int
	Supersample int
	Workers     int
	Face        *image.NRGBA
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Path    string
	Success bool
	Error   string
}

// Run renders one WebP gauge frame per sample using a worker pool.
func Run(cfg Config, samples []telemetry.Sample) []Result {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	total := len(samples)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	idxChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxChan {
				results[idx] = renderFrame(cfg, idx, samples[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range samples {
		idxChan <- i
	}
	close(idxChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, idx int, s telemetry.Sample) Result {
	// The capture carries raw estimator output; run it through the same
	// pipeline a live display would: array -> quaternion -> normalize ->
	// Euler angles.
	q := rotation.QuatFromArray(s.Q).Normalize()
	e := rotation.QuatToEuler(q)

	img := gauge.Render(e, gauge.Options{
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Face:        cfg.Face,
	})

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%05d.webp", idx))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Index: idx, Path: outPath, Error: err.Error()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Index: idx, Path: outPath, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Index: idx, Path: outPath, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Index: idx, Path: outPath, Success: true}
}
