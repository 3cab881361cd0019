package raybench

import "github.com/chewxy/math32"

const eps = 1e-5

func almostEqual(a, b Real) bool {
	return math32.Abs(a-b) <= eps
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}
