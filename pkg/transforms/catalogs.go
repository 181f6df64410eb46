package transforms

import (
	"sort"

	"github.com/willbeason/chaos-game/pkg/errors"
)

// Sierpinski moves a point halfway towards one of the corners (0, 0), (1, 0)
// and (0.5, 1), each with equal weight.
func Sierpinski() Catalog {
	return Catalog{
		{Transform: Linear{Multiply: 0.5, Add: 0}, Weight: 1},
		{Transform: Linear{Multiply: 0.5, Add: 0.5}, Weight: 1},
		{Transform: Linear{Multiply: 0.5, Add: complex(0.25, 0.5)}, Weight: 1},
	}
}

// Barnsley is Barnsley's fern: stem, successively smaller leaflets, and the
// largest left and right leaflets.
func Barnsley() Catalog {
	return Catalog{
		{Transform: Affine{A: 0, B: 0, C: 0, D: 0.16}, Weight: 1},
		{Transform: Affine{A: 0.85, B: 0.04, C: -0.04, D: 0.85, F: 1.6}, Weight: 85},
		{Transform: Affine{A: 0.2, B: -0.26, C: 0.23, D: 0.22, F: 1.6}, Weight: 7},
		{Transform: Affine{A: -0.15, B: 0.28, C: 0.26, D: 0.24, F: 0.44}, Weight: 7},
	}
}

// Dragon is the Heighway dragon curve.
func Dragon() Catalog {
	return Catalog{
		{Transform: Linear{Multiply: complex(0.5, 0.5)}, Weight: 1},
		{Transform: Linear{Multiply: complex(-0.5, -0.5), Add: 1}, Weight: 1},
	}
}

var builtin = map[string]func() Catalog{
	"sierpinski": Sierpinski,
	"barnsley":   Barnsley,
	"dragon":     Dragon,
}

// Lookup returns a fresh copy of the named built-in catalog.
func Lookup(name string) (Catalog, error) {
	f, ok := builtin[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "unknown catalog %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the built-in catalogs in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
