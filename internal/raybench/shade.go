package raybench

var (
	white   = Vec3{1, 1, 1}
	skyBlue = Vec3{0.5, 0.7, 1.0}
)

// RayColor shades a single ray: sphere hits are colored by their surface normal,
// everything else gets the vertical sky gradient. It has no shared state and
// may be called from any number of goroutines.
func RayColor(r Ray) Vec3 {
	s := DefaultSphere
	if t := s.Hit(r); t > 0 {
		n := Unit(r.At(t).Sub(s.Center))
		return ScalarMul(0.5, n.AddScalar(1))
	}
	return skyColor(r)
}

// skyColor blends white into sky blue by the height of the (re-normalized) direction.
func skyColor(r Ray) Vec3 {
	unit := Unit(r.Direction())
	t := 0.5 * (unit.Y + 1)
	return white.Scale(1 - t).Add(skyBlue.Scale(t))
}
