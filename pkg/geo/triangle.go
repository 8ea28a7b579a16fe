package geo

// Triangle is a triangle in the XZ plane defined by three vertices.
type Triangle struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
	C Point2D `json:"c"`
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(a, b, c Point2D) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Rotate returns the triangle rotated by angle radians around the origin.
func (t Triangle) Rotate(angle float64) Triangle {
	return Triangle{
		A: t.A.Rotate(angle),
		B: t.B.Rotate(angle),
		C: t.C.Rotate(angle),
	}
}

// Contains reports whether pt lies inside the triangle (edges inclusive),
// using the sign-consistency test: the point is inside when the three edge
// cross products do not have mixed signs. Works for either winding order.
func (t Triangle) Contains(pt Point2D) bool {
	d1 := edgeSign(pt, t.A, t.B)
	d2 := edgeSign(pt, t.B, t.C)
	d3 := edgeSign(pt, t.C, t.A)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Vertices returns the three vertices in order.
func (t Triangle) Vertices() [3]Point2D {
	return [3]Point2D{t.A, t.B, t.C}
}

func edgeSign(p, a, b Point2D) float64 {
	return (p.X-b.X)*(a.Z-b.Z) - (a.X-b.X)*(p.Z-b.Z)
}
