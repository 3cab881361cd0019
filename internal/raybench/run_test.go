package raybench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	warmup := 0
	cfg := &Config{
		ImageWidth:  8,
		AspectRatio: 2,
		Warmup:      &warmup,
		Runs:        2,
		Reconcile:   true,
		PPMOut:      filepath.Join(dir, "images", "image.ppm"),
		PNGOut:      filepath.Join(dir, "image.png"),
		BMPOut:      filepath.Join(dir, "image.bmp"),
		GIFOut:      filepath.Join(dir, "image.gif"),
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		t.Fatal(err)
	}

	var out, progress bytes.Buffer
	if err := runConfig(context.Background(), cfg, &out, &progress); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Speedup: ") {
		t.Fatalf("report missing speedup:\n%s", out.String())
	}
	if !strings.Contains(progress.String(), "[PROGRESS] parallel 100.00%") {
		t.Fatalf("progress missing:\n%s", progress.String())
	}
	data, err := os.ReadFile(cfg.PPMOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3 8 4 255\n") {
		t.Fatalf("ppm header wrong: %q", data[:16])
	}
	for _, p := range []string{cfg.PNGOut, cfg.BMPOut, cfg.GIFOut} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("output not written: %v", err)
		}
	}
}

func TestRunConfigDebugStats(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	cache = &RayLogCache{rays: make(map[Category]int)}

	warmup := 0
	cfg := &Config{ImageWidth: 4, AspectRatio: 2, Warmup: &warmup, Runs: 1, PPMOut: filepath.Join(t.TempDir(), "x.ppm")}
	cfg.applyDefaults()
	var out, progress bytes.Buffer
	if err := runConfig(context.Background(), cfg, &out, &progress); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(progress.String(), "Ray type ") {
		t.Fatalf("ray stats missing:\n%s", progress.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	if err := Run(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestOutPath(t *testing.T) {
	if got := outPath("a.png", false, "images/image.ppm", ".png"); got != "a.png" {
		t.Fatalf("configured path ignored: %q", got)
	}
	if got := outPath("", false, "images/image.ppm", ".png"); got != "" {
		t.Fatalf("disabled output should be empty: %q", got)
	}
	if got := outPath("", true, "images/image.ppm", ".bmp"); got != "images/image.bmp" {
		t.Fatalf("derived path wrong: %q", got)
	}
}
