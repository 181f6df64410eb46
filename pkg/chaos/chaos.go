// Package chaos plays the chaos game over a weighted catalog of transforms.
//
// Each step draws one transform with probability proportional to its weight,
// moves the current point through it and plots the remapped result:
//
//	g, err := chaos.New(transforms.Barnsley(), rng.New(seed), canvas,
//	    chaos.WithRemap(chaos.BarnsleyRemap(500)))
//	if err != nil {
//	    return err
//	}
//	g.Generate(100000)
//
// A Generator is not safe for concurrent use. Its random source may be shared
// with other generators as long as they step one at a time.
package chaos

import (
	"image/color"

	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
	"github.com/willbeason/chaos-game/pkg/plot"
	"github.com/willbeason/chaos-game/pkg/rng"
	"github.com/willbeason/chaos-game/pkg/transforms"
)

// Start is the default initial point.
var Start = geometry.XY{X: 0.5, Y: 0.5}

// Red is the default plot colour.
var Red = color.RGBA{R: 255, A: 255}

// Generator holds a borrowed catalog and random source, and owns the moving
// point.
type Generator struct {
	catalog transforms.Catalog
	total   int
	src     rng.Source
	sink    plot.Sink

	remap Remap
	color color.Color

	point geometry.XY
	steps int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRemap sets the pixel-space remap. The default is Identity.
func WithRemap(r Remap) Option {
	return func(g *Generator) { g.remap = r }
}

// WithStart sets the initial point. The default is Start.
func WithStart(xy geometry.XY) Option {
	return func(g *Generator) { g.point = xy }
}

// WithColor sets the plot colour. The default is Red.
func WithColor(c color.Color) Option {
	return func(g *Generator) { g.color = c }
}

// New validates catalog and returns a Generator plotting onto sink.
//
// An empty catalog, one whose weights sum to zero, or a nil src or sink fails
// with INVALID_CONFIGURATION.
func New(catalog transforms.Catalog, src rng.Source, sink plot.Sink, opts ...Option) (*Generator, error) {
	total, err := catalog.TotalWeight()
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "random source is nil")
	}
	if sink == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "plot sink is nil")
	}

	g := &Generator{
		catalog: catalog,
		total:   total,
		src:     src,
		sink:    sink,
		remap:   Identity,
		color:   Red,
		point:   Start,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Step moves the point through one randomly selected transform and plots it.
func (g *Generator) Step() {
	i, err := g.catalog.Select(g.src, g.total)
	if err != nil {
		errors.Invariant("selecting from a validated catalog: %v", err)
	}
	g.apply(g.catalog[i].Transform)
}

func (g *Generator) apply(t transforms.Transform) {
	g.point = t.Next(g.point)
	g.steps++

	p := g.remap.Apply(g.point)
	g.sink.Plot(p.X, p.Y, g.color)
}

// Generate runs n steps.
func (g *Generator) Generate(n int) {
	for i := 0; i < n; i++ {
		g.Step()
	}
}

// Point returns the current position in IFS coordinates.
func (g *Generator) Point() geometry.XY {
	return g.point
}

// Steps returns the number of steps taken so far.
func (g *Generator) Steps() int {
	return g.steps
}

// TotalWeight returns the catalog's summed weight.
func (g *Generator) TotalWeight() int {
	return g.total
}
