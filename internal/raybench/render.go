package raybench

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Viewport is the pixel geometry of one render pass.
type Viewport struct {
	Width, Height int
}

// UV maps pixel (i,j) to normalized image-plane coordinates.
func (vp Viewport) UV(i, j int) (u, v Real) {
	return Real(i) / Real(vp.Width-1), Real(j) / Real(vp.Height-1)
}

// renderRow fills dst with the colors of row j.
func renderRow(cam Camera, vp Viewport, j int, dst []Vec3) {
	for i := 0; i < vp.Width; i++ {
		dst[i] = RayColor(cam.GetRay(vp.UV(i, j)))
	}
}

// renderSequential renders every pixel of img on the calling goroutine,
// rows from the last one to the first.
func renderSequential(cam Camera, img *Pixels) {
	vp := img.Viewport()
	for j := vp.Height - 1; j >= 0; j-- {
		for i := 0; i < vp.Width; i++ {
			img.SetPixel(i, j, RayColor(cam.GetRay(vp.UV(i, j))))
		}
	}
}

// renderParallel spawns one goroutine per row. Each goroutine renders into its
// own copy of the row, so no locking is needed. It returns once every row is done.
// With reconcile the copies are written back into img after the barrier,
// otherwise img is left untouched and the pass only serves for timing.
func renderParallel(ctx context.Context, cam Camera, img *Pixels, reconcile bool) error {
	vp := img.Viewport()
	rows := make([][]Vec3, vp.Height)
	g, ctx := errgroup.WithContext(ctx)
	for j := vp.Height - 1; j >= 0; j-- {
		row := img.Row(j)
		rows[j] = row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			renderRow(cam, vp, j, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if reconcile {
		for j, row := range rows {
			img.SetRow(j, row)
		}
	}
	return nil
}
