package raybench

import (
	"encoding/json"
	"fmt"
	"os"
)

type CameraCfg struct {
	ViewportHeight Real `json:"viewportHeight,omitempty"`
	FocalLength    Real `json:"focalLength,omitempty"`
	Origin         Vec3 `json:"origin"`
}

type Config struct {
	ImageWidth  int       `json:"imageWidth"`
	AspectRatio Real      `json:"aspectRatio,omitempty"`
	Camera      CameraCfg `json:"camera"`
	Warmup      *int      `json:"warmup,omitempty"` // nil means default, 0 disables warm-up
	Runs        int       `json:"runs,omitempty"`
	Reconcile   bool      `json:"reconcile,omitempty"`
	PPMOut      string    `json:"ppmOut"`
	PNGOut      string    `json:"pngOut,omitempty"`
	BMPOut      string    `json:"bmpOut,omitempty"`
	GIFOut      string    `json:"gifOut,omitempty"`
	GIFDelay    int       `json:"gifDelay,omitempty"`
}

// ImageHeight derives the height from width and aspect ratio, truncated.
func (c *Config) ImageHeight() int {
	return int(Real(c.ImageWidth) / c.AspectRatio)
}

// Viewport is the pixel geometry implied by the config.
func (c *Config) Viewport() Viewport {
	return Viewport{Width: c.ImageWidth, Height: c.ImageHeight()}
}

// NewCamera builds the camera described by the config.
func (c *Config) NewCamera() Camera {
	return NewCamera(c.Camera.ViewportHeight, c.AspectRatio, c.Camera.FocalLength, c.Camera.Origin)
}

// WarmupPasses returns the number of untimed passes.
func (c *Config) WarmupPasses() int {
	if c.Warmup == nil {
		return WarmupPasses
	}
	return *c.Warmup
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills fields left at their zero value. loadConfig does not call
// it: JSON is decoded over DefaultConfig, so only absent keys keep a default and
// explicit out-of-range values reach validate.
func (c *Config) applyDefaults() {
	if c.ImageWidth == 0 {
		c.ImageWidth = ImageWidth
	}
	if c.AspectRatio == 0 {
		c.AspectRatio = AspectRatio
	}
	if c.Camera.ViewportHeight == 0 {
		c.Camera.ViewportHeight = ViewportHeight
	}
	if c.Camera.FocalLength == 0 {
		c.Camera.FocalLength = FocalLength
	}
	if c.Runs == 0 {
		c.Runs = BenchRuns
	}
	if c.PPMOut == "" {
		c.PPMOut = PPMOut
	}
	if c.GIFDelay == 0 {
		c.GIFDelay = GIFDelay
	}
}

// validate rejects values the camera and render loops cannot handle.
// u and v divide by (w-1) and (h-1), so both sizes must be at least 2.
func (c *Config) validate() error {
	if !(c.AspectRatio > 0) {
		return fmt.Errorf("aspectRatio must be > 0, got %.6g", c.AspectRatio)
	}
	if !(c.Camera.ViewportHeight > 0) {
		return fmt.Errorf("camera.viewportHeight must be > 0, got %.6g", c.Camera.ViewportHeight)
	}
	if !(c.Camera.FocalLength > 0) {
		return fmt.Errorf("camera.focalLength must be > 0, got %.6g", c.Camera.FocalLength)
	}
	if c.ImageWidth < 2 {
		return fmt.Errorf("imageWidth must be >= 2, got %d", c.ImageWidth)
	}
	if h := c.ImageHeight(); h < 2 {
		return fmt.Errorf("derived image height must be >= 2, got %d (width %d, aspect %.6g)", h, c.ImageWidth, c.AspectRatio)
	}
	if c.WarmupPasses() < 0 {
		return fmt.Errorf("warmup must be >= 0, got %d", c.WarmupPasses())
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", c.Runs)
	}
	if c.GIFDelay < 0 {
		return fmt.Errorf("gifDelay must be >= 0, got %d", c.GIFDelay)
	}
	return nil
}

// loadConfig reads a JSON config; an empty path gives the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %q: size=(%d, %d), aspect=%f, warmup=%d, runs=%d", path, cfg.ImageWidth, cfg.ImageHeight(), cfg.AspectRatio, cfg.WarmupPasses(), cfg.Runs)
	return cfg, nil
}
