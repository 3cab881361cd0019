package raybench

import "github.com/chewxy/math32"

// Sphere is an implicit sphere |p - Center| = Radius.
type Sphere struct {
	Center Vec3
	Radius Real
}

// DefaultSphere is the only object in the scene.
var DefaultSphere = Sphere{Center: Vec3{0, 0, -1}, Radius: 0.5}

// hitSphere solves |o + t*d - c|^2 = r^2 and returns the smaller root,
// or exactly -1 when the ray misses. The root is not checked for t > 0:
// rays starting inside or in front of the sphere still report it.
func hitSphere(center Vec3, radius Real, r Ray) Real {
	oc := r.Origin().Sub(center)
	a := r.Direction().Dot(r.Direction())
	b := 2 * oc.Dot(r.Direction())
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return -1
	}
	return (-b - math32.Sqrt(disc)) / (2 * a)
}

// Hit reports the hit parameter of r against s, see hitSphere.
func (s Sphere) Hit(r Ray) Real { return hitSphere(s.Center, s.Radius, r) }
