package svgpath

type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

var Identity = Matrix{
	A: 1, C: 0, E: 0,
	B: 0, D: 1, F: 0,
}

func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, C: 0, E: x,
		B: 0, D: 1, F: y,
	}
}

func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, C: 0, E: 0,
		B: 0, D: y, F: 0,
	}
}

// FlipY maps y-up drawing coordinates to SVG's y-down page, mirroring about
// the horizontal line halfway between minY and maxY.
func FlipY(minY, maxY float64) Matrix {
	return Translate(0, minY+maxY).Multiply(Scale(1, -1))
}

func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

func (m Matrix) transformX(x, y float64) float64 {
	return m.A*x + m.C*y + m.E
}

func (m Matrix) transformY(x, y float64) float64 {
	return m.B*x + m.D*y + m.F
}

func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.transformX(x, y), m.transformY(x, y)
}

func (m Matrix) TransformPath(path []*SubPath) {
	for _, group := range path {
		group.X, group.Y = m.TransformPoint(group.X, group.Y)
		for _, drawTo := range group.DrawTo {
			drawTo.X, drawTo.Y = m.TransformPoint(drawTo.X, drawTo.Y)
		}
	}
}
