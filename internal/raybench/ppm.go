package raybench

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// WritePPM serializes img as plain-text PPM: a "P3 w h 255" header, then every
// pixel from the first buffer row on as "r g b " with each channel 255.999*c
// truncated, see ppmChannel.
func WritePPM(w io.Writer, img *Pixels) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3 %d %d %d\n", img.Width(), img.Height(), MaxColor); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, row := range img.Rows {
		for _, c := range row {
			if _, err := fmt.Fprintf(bw, "%d %d %d ", ppmChannel(c.X), ppmChannel(c.Y), ppmChannel(c.Z)); err != nil {
				return fmt.Errorf("error writing pixel: %w", err)
			}
		}
	}
	return bw.Flush()
}

// ppmChannel scales c to [0,255] and truncates. Colors are not clamped to 1,
// but the result saturates like an unsigned 32-bit cast: NaN and negatives
// give 0, +Inf and huge values give math.MaxUint32.
func ppmChannel(c Real) int64 {
	v := colorScale * c
	if !(v > 0) {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return int64(v)
}

// SavePPM writes img to path, creating parent directories as needed.
func SavePPM(img *Pixels, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	if err := WritePPM(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
