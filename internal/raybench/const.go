package raybench

// Real is the scalar used by all geometry and color math.
type Real = float32

// Defaults used when the config leaves a field unset.
const (
	ImageWidth     = 100
	AspectRatio    = Real(16.0 / 9.0)
	ViewportHeight = Real(2.0)
	FocalLength    = Real(1.0)
	WarmupPasses   = 3
	BenchRuns      = 10
	PPMOut         = "images/image.ppm"
	GIFDelay       = 50 // 100ths of a second per frame
	MaxColor       = 255
	colorScale     = Real(255.999)
)
