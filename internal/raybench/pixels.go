package raybench

// Pixels is the rendered image: Rows[y][x] holds the RGB color of pixel (x,y).
// Colors are not clamped on write.
type Pixels struct {
	Rows [][]Vec3
}

// NewPixels allocates a zero (black) image.
func NewPixels(width, height int) *Pixels {
	if width <= 0 || height <= 0 {
		panic("image size must be positive")
	}
	rows := make([][]Vec3, height)
	for y := range rows {
		rows[y] = make([]Vec3, width)
	}
	DebugLog("Created pixel buffer %dx%d", width, height)
	return &Pixels{Rows: rows}
}

func (p *Pixels) Width() int  { return len(p.Rows[0]) }
func (p *Pixels) Height() int { return len(p.Rows) }

// Viewport returns the render geometry matching the buffer size.
func (p *Pixels) Viewport() Viewport {
	return Viewport{Width: p.Width(), Height: p.Height()}
}

func (p *Pixels) SetPixel(x, y int, c Vec3) { p.Rows[y][x] = c }
func (p *Pixels) Pixel(x, y int) Vec3       { return p.Rows[y][x] }

// Row returns a private copy of row y.
func (p *Pixels) Row(y int) []Vec3 {
	row := make([]Vec3, len(p.Rows[y]))
	copy(row, p.Rows[y])
	return row
}

// SetRow copies row into row y.
func (p *Pixels) SetRow(y int, row []Vec3) {
	copy(p.Rows[y], row)
}

// Equal reports whether both buffers have the same size and every channel
// differs by at most tol.
func (p *Pixels) Equal(o *Pixels, tol Real) bool {
	if p.Width() != o.Width() || p.Height() != o.Height() {
		return false
	}
	abs := func(x Real) Real {
		if x < 0 {
			return -x
		}
		return x
	}
	for y, row := range p.Rows {
		for x, a := range row {
			b := o.Rows[y][x]
			if abs(a.X-b.X) > tol || abs(a.Y-b.Y) > tol || abs(a.Z-b.Z) > tol {
				return false
			}
		}
	}
	return true
}
