// Package triangle draws the Sierpinski triangle on a pixel grid by repeatedly
// moving a point halfway towards one of three fixed vertices.
//
// Generate picks vertices at random. Run instead visits every sequence of
// vertex choices up to a fixed depth, which needs no random source and always
// plots the same set of pixels.
package triangle

import (
	"image/color"

	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
	"github.com/willbeason/chaos-game/pkg/plot"
	"github.com/willbeason/chaos-game/pkg/rng"
)

// NumBounds is the number of triangle vertices.
const NumBounds = 3

// MaxDepth is the deepest recursive run accepted from configuration. Run at
// MaxDepth makes about 5.2 billion plot calls.
const MaxDepth = 20

// Colors holds the colour plotted when moving towards each vertex.
var Colors = [NumBounds]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}

// Generator owns the moving point and borrows its random source and sink.
type Generator struct {
	bounds [NumBounds]geometry.Point
	point  geometry.Point

	src  rng.Source
	sink plot.Sink
}

// Bounds returns the vertices of the triangle inscribed in a size x size
// surface: top middle, bottom left and bottom right.
func Bounds(size int) [NumBounds]geometry.Point {
	return [NumBounds]geometry.Point{
		{X: size >> 1, Y: 0},
		{X: 0, Y: size - 1},
		{X: size - 1, Y: size - 1},
	}
}

// New returns a Generator for a size x size surface with the moving point at
// its centre. src may be nil if only Run is used.
func New(size int, src rng.Source, sink plot.Sink) (*Generator, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "size must be positive, got %d", size)
	}

	half := size >> 1
	return &Generator{
		bounds: Bounds(size),
		point:  geometry.Point{X: half, Y: half},
		src:    src,
		sink:   sink,
	}, nil
}

// Bounds returns the generator's vertices.
func (g *Generator) Bounds() [NumBounds]geometry.Point {
	return g.bounds
}

// Point returns the moving point.
func (g *Generator) Point() geometry.Point {
	return g.point
}

// step moves the point halfway towards vertex i and plots it in that vertex's
// colour.
func (g *Generator) step(i int) {
	g.point = geometry.Midpoint(g.point, g.bounds[i])
	g.sink.Plot(float64(g.point.X), float64(g.point.Y), Colors[i])
}

// vertexForRoll maps a roll of a six-sided die onto a vertex, two faces each.
func vertexForRoll(roll int) int {
	return roll >> 1
}

// Generate takes n random steps.
func (g *Generator) Generate(n int) error {
	if g.src == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "random mode needs a random source")
	}

	for i := 0; i < n; i++ {
		g.step(vertexForRoll(rng.Uniform(g.src, 0, 2*NumBounds)))
	}
	return nil
}

// Run plots every path of at most depth vertex choices, depth first with the
// vertices in order. Every node of the tree is plotted, so a run makes
// PlotCount(depth) plot calls. The moving point is left where it started.
func (g *Generator) Run(depth int) {
	g.descend(0, depth)
}

func (g *Generator) descend(curr, depth int) {
	if curr >= depth {
		return
	}

	for i := 0; i < NumBounds; i++ {
		saved := g.point
		g.step(i)
		g.descend(curr+1, depth)
		g.point = saved
	}
}

// PlotCount returns the number of plot calls made by Run(depth):
// 3 + 9 + ... + 3^depth. The result fits an int for any depth up to MaxDepth.
func PlotCount(depth int) int {
	count, level := 0, 1
	for d := 0; d < depth; d++ {
		level *= NumBounds
		count += level
	}
	return count
}
