package raybench

import "github.com/chewxy/math32"

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

func isFiniteVec(v Vec3) bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

// countNonFinite returns how many pixels carry a NaN or Inf channel.
func countNonFinite(img *Pixels) int {
	n := 0
	for _, row := range img.Rows {
		for _, c := range row {
			if !isFiniteVec(c) {
				n++
			}
		}
	}
	return n
}
