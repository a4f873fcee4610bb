package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	CapturePath string `json:"capture_path"`
	OutputDir   string `json:"output_dir"`
	DialFace    string `json:"dial_face"`

	// Render settings
	FrameSize   int `json:"frame_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Capture != "" {
		c.CapturePath = flags.Capture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.DialFace != "" {
		c.DialFace = flags.DialFace
	}
	if flags.Size > 0 {
		c.FrameSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.FrameSize <= 0 {
		c.FrameSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Capture   string
	OutputDir string
	DialFace  string
	Size      int
	Workers   int
}
