package raybench

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestHitSphere_AxisCase(t *testing.T) {
	s := DefaultSphere

	// From the origin straight down -Z: |t*(0,0,-1) - (0,0,-1)| = 0.5 => t in {0.5, 1.5}.
	got := hitSphere(s.Center, s.Radius, NewRay(Vec3{}, Vec3{0, 0, -1}))
	if !almostEqual(got, 0.5) {
		t.Fatalf("t wrong: %.7g", got)
	}

	// Unnormalized direction scales t down.
	got = s.Hit(NewRay(Vec3{}, Vec3{0, 0, -2}))
	if !almostEqual(got, 0.25) {
		t.Fatalf("t wrong for scaled direction: %.7g", got)
	}
}

func TestHitSphere_MissIsMinusOne(t *testing.T) {
	s := DefaultSphere
	for _, d := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {1, 1, -1}} {
		if got := s.Hit(NewRay(Vec3{}, d)); got != -1 {
			t.Fatalf("expected exactly -1 for %+v, got %.7g", d, got)
		}
	}
}

func TestHitSphere_NoForwardCheck(t *testing.T) {
	s := DefaultSphere

	// Sphere behind the origin: both roots negative, smaller one reported.
	got := s.Hit(NewRay(Vec3{0, 0, -3}, Vec3{0, 0, -1}))
	if !almostEqual(got, -2.5) {
		t.Fatalf("behind t wrong: %.7g", got)
	}

	// Origin inside: smaller root is negative.
	got = s.Hit(NewRay(Vec3{0, 0, -1}, Vec3{0, 0, -1}))
	if !almostEqual(got, -0.5) {
		t.Fatalf("inside t wrong: %.7g", got)
	}
}

func TestHitSphere_Tangent(t *testing.T) {
	// Grazes the top of the sphere: discriminant is 0, single root.
	got := hitSphere(Vec3{0, 0, -1}, 0.5, NewRay(Vec3{-1, 0.5, -1}, Vec3{1, 0, 0}))
	if !almostEqual(got, 1) || math32.IsNaN(got) {
		t.Fatalf("tangent t wrong: %.7g", got)
	}
}
