package raybench

// Ray is a half-line origin + t*direction. The direction is not required to be unit-length.
type Ray struct {
	origin    Vec3
	direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

func (r Ray) Origin() Vec3    { return r.origin }
func (r Ray) Direction() Vec3 { return r.direction }

// At evaluates the ray at parameter t (any t, including negative).
func (r Ray) At(t Real) Vec3 {
	return r.origin.Add(r.direction.Scale(t))
}
