package raybench

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF writes one frame per buffer, all frames must share a size.
// delay is in 100ths of a second.
func SaveAnimatedGIF(frames []*Pixels, path string, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gif: no frames")
	}
	w, h := frames[0].Width(), frames[0].Height()
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for i, fr := range frames {
		if fr.Width() != w || fr.Height() != h {
			return fmt.Errorf("gif: frame %d is %dx%d, want %dx%d", i, fr.Width(), fr.Height(), w, h)
		}
		rgba := toNRGBA(fr)
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
