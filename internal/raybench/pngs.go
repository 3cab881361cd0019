package raybench

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// toNRGBA converts img into an 8-bit image, clamping each channel to [0,1].
// Buffer row 0 becomes the top image row, the same order WritePPM uses.
func toNRGBA(img *Pixels) *image.NRGBA {
	w, h := img.Width(), img.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	toByte := func(v Real) uint8 {
		if !(v > 0) { // catches NaN
			return 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(colorScale * v)
	}
	for y := 0; y < h; y++ {
		rowOff := y * out.Stride
		for x, c := range img.Rows[y] {
			p := rowOff + x*4
			out.Pix[p+0] = toByte(c.X)
			out.Pix[p+1] = toByte(c.Y)
			out.Pix[p+2] = toByte(c.Z)
			out.Pix[p+3] = 255
		}
	}
	return out
}

// SavePNG writes img as a lossless 8-bit PNG.
func SavePNG(img *Pixels, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, toNRGBA(img)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
