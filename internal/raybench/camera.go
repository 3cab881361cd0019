package raybench

// Camera maps image-plane coordinates (u,v) to world-space rays.
// All fields are derived once in NewCamera.
type Camera struct {
	ViewportHeight Real
	ViewportWidth  Real
	FocalLength    Real
	Origin         Vec3

	// cached
	Horizontal      Vec3
	Vertical        Vec3
	LowerLeftCorner Vec3
}

// NewCamera builds a camera looking down -Z from origin.
func NewCamera(viewportHeight, aspectRatio, focalLength Real, origin Vec3) Camera {
	viewportWidth := aspectRatio * viewportHeight
	horizontal := Vec3{viewportWidth, 0, 0}
	vertical := Vec3{0, viewportHeight, 0}
	lowerLeft := origin.
		Sub(horizontal.DivScalar(2)).
		Sub(vertical.DivScalar(2)).
		Sub(Vec3{0, 0, focalLength})
	cam := Camera{
		ViewportHeight:  viewportHeight,
		ViewportWidth:   viewportWidth,
		FocalLength:     focalLength,
		Origin:          origin,
		Horizontal:      horizontal,
		Vertical:        vertical,
		LowerLeftCorner: lowerLeft,
	}
	DebugLog("Created camera %+v", cam)
	return cam
}

// GetRay returns the ray through viewport point (u,v). u and v are not clamped,
// values outside [0,1] extrapolate past the viewport. The direction is not normalized.
func (c Camera) GetRay(u, v Real) Ray {
	dir := c.LowerLeftCorner.
		Add(c.Horizontal.Scale(u)).
		Add(c.Vertical.Scale(v)).
		Sub(c.Origin)
	return NewRay(c.Origin, dir)
}
