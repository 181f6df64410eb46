package geometry

// XY is a point in the continuous plane.
type XY struct {
	X, Y float64
}

// Point is a point on the pixel grid.
type Point struct {
	X, Y int
}

// XY converts p to continuous coordinates.
func (p Point) XY() XY {
	return XY{X: float64(p.X), Y: float64(p.Y)}
}

// Midpoint returns the point halfway between p and q, rounding each coordinate
// towards negative infinity.
func Midpoint(p, q Point) Point {
	return Point{
		X: (p.X + q.X) >> 1,
		Y: (p.Y + q.Y) >> 1,
	}
}

// InTriangle reports whether xy lies inside or on the triangle abc, allowing
// an absolute slack of eps on each edge test.
func InTriangle(xy, a, b, c XY, eps float64) bool {
	d1 := cross(a, b, xy)
	d2 := cross(b, c, xy)
	d3 := cross(c, a, xy)

	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps

	return !(hasNeg && hasPos)
}

func cross(a, b, p XY) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
