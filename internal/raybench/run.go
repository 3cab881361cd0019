package raybench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Run loads the config at cfgPath (defaults when empty), benchmarks the render
// and writes the image. The report goes to stdout, progress to stderr.
func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	return runConfig(ctx, cfg, os.Stdout, os.Stderr)
}

func runConfig(ctx context.Context, cfg *Config, out, progress io.Writer) error {
	vp := cfg.Viewport()
	cam := cfg.NewCamera()
	img := NewPixels(vp.Width, vp.Height)

	if Debug {
		logImageRays(cam, vp)
		raysStats(progress)
	}

	bench := NewBench()
	bench.Warmup = cfg.WarmupPasses()
	bench.Runs = cfg.Runs
	bench.Reconcile = cfg.Reconcile || Reconcile
	bench.Progress = progress

	rep, err := bench.Run(ctx, cam, img)
	if err != nil {
		return err
	}
	if err := rep.Print(out); err != nil {
		return err
	}
	warnNonFinite(img)

	fmt.Fprintln(progress, "Writing pixels to file...")
	if err := SavePPM(img, cfg.PPMOut); err != nil {
		return err
	}
	DebugLog("Saved PPM: %s", cfg.PPMOut)

	if path := outPath(cfg.PNGOut, PNG, cfg.PPMOut, ".png"); path != "" {
		if err := SavePNG(img, path); err != nil {
			return err
		}
		DebugLog("Saved PNG: %s", path)
	}
	if path := outPath(cfg.BMPOut, BMP, cfg.PPMOut, ".bmp"); path != "" {
		if err := SaveBMP(img, path); err != nil {
			return err
		}
		DebugLog("Saved BMP: %s", path)
	}
	if path := outPath(cfg.GIFOut, GIF, cfg.PPMOut, ".gif"); path != "" {
		par := NewPixels(vp.Width, vp.Height)
		if err := renderParallel(ctx, cam, par, true); err != nil {
			return err
		}
		if err := SaveAnimatedGIF([]*Pixels{img, par}, path, cfg.GIFDelay); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s", path)
	}
	return nil
}

// outPath picks the configured path, or derives one from the PPM path when
// only the flag is set. Empty means the output is disabled.
func outPath(configured string, flag bool, ppm, ext string) string {
	if configured != "" {
		return configured
	}
	if !flag {
		return ""
	}
	return strings.TrimSuffix(ppm, filepath.Ext(ppm)) + ext
}

// warnNonFinite logs a warning when degenerate math left NaN or Inf pixels in img.
func warnNonFinite(img *Pixels) {
	if n := countNonFinite(img); n > 0 {
		Logger().Warn("non-finite pixels in image", "count", n)
	}
}
