package raybench

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestWritePPMSinglePixel(t *testing.T) {
	img := NewPixels(1, 1)
	img.SetPixel(0, 0, Vec3{1, 0, 0})
	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "P3 1 1 255\n255 0 0 "; got != want {
		t.Fatalf("ppm mismatch: got %q want %q", got, want)
	}
}

func TestWritePPMRowOrder(t *testing.T) {
	img := NewPixels(2, 2)
	img.SetPixel(0, 0, Vec3{1, 1, 1})
	img.SetPixel(1, 0, Vec3{0.5, 0.5, 0.5})
	img.SetPixel(1, 1, Vec3{0, 0, 0.25})
	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := "P3 2 2 255\n255 255 255 127 127 127 0 0 0 0 0 63 "
	if got := buf.String(); got != want {
		t.Fatalf("ppm mismatch: got %q want %q", got, want)
	}
}

func TestWritePPMDegenerate(t *testing.T) {
	img := NewPixels(2, 1)
	img.SetPixel(0, 0, Unit(Vec3{}))
	img.SetPixel(1, 0, Vec3{-0.5, 0, math32.Inf(1)})
	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := "P3 2 1 255\n0 0 0 0 0 4294967295 "
	if got := buf.String(); got != want {
		t.Fatalf("ppm mismatch: got %q want %q", got, want)
	}
}

func TestPPMChannel(t *testing.T) {
	if ppmChannel(1) != 255 || ppmChannel(0.5) != 127 || ppmChannel(2) != 511 {
		t.Fatal("in-range or over-range channel wrong")
	}
	if ppmChannel(math32.NaN()) != 0 || ppmChannel(-1) != 0 || ppmChannel(math32.Inf(-1)) != 0 {
		t.Fatal("NaN and negatives must give 0")
	}
	if ppmChannel(math32.Inf(1)) != math.MaxUint32 || ppmChannel(1e30) != math.MaxUint32 {
		t.Fatal("+Inf must saturate")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPMError(t *testing.T) {
	img := NewPixels(300, 300)
	if err := WritePPM(failWriter{}, img); err == nil {
		t.Fatal("expected write error")
	}
}

func TestSavePPM(t *testing.T) {
	img := NewPixels(4, 2)
	path := filepath.Join(t.TempDir(), "images", "out.ppm")
	if err := SavePPM(img, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3 4 2 255\n") {
		t.Fatalf("header wrong: %q", data)
	}
	if n := strings.Count(string(data), "0 0 0 "); n != 8 {
		t.Fatalf("expected 8 black pixels, got %d", n)
	}
}

func TestSavePPMOpenError(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be created as a file
	err := SavePPM(NewPixels(2, 2), dir)
	if err == nil || !strings.Contains(err.Error(), "error opening file") {
		t.Fatalf("expected open error, got %v", err)
	}
}
