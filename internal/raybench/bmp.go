package raybench

import (
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

// SaveBMP writes img as an uncompressed BMP.
func SaveBMP(img *Pixels, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	if err := bmp.Encode(f, toNRGBA(img)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
