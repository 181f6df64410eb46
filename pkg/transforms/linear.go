package transforms

import (
	"math"

	"github.com/willbeason/chaos-game/pkg/geometry"
)

// Linear is a similarity transform of the plane written as z*Multiply + Add,
// treating points as complex numbers.
type Linear struct {
	Multiply complex128
	Add      complex128
}

func (l Linear) Next(xy geometry.XY) geometry.XY {
	z := complex(xy.X, xy.Y)*l.Multiply + l.Add
	return geometry.XY{X: real(z), Y: imag(z)}
}

// Affine is the general map
//
//	x' = A*x + B*y + E
//	y' = C*x + D*y + F
type Affine struct {
	A, B, C, D float64
	E, F       float64
}

func (a Affine) Next(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: a.A*xy.X + a.B*xy.Y + a.E,
		Y: a.C*xy.X + a.D*xy.Y + a.F,
	}
}

// Contractive reports whether the linear part of a strictly shrinks distances,
// i.e. its largest singular value is below 1.
func (a Affine) Contractive() bool {
	t := a.A*a.A + a.B*a.B + a.C*a.C + a.D*a.D
	det := a.A*a.D - a.B*a.C
	s2 := 0.5 * (t + math.Sqrt(math.Max(t*t-4*det*det, 0)))
	return s2 < 1.0
}

var (
	_ Transform = Linear{}
	_ Transform = Affine{}
)
