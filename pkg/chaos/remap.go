package chaos

import (
	"sort"

	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
)

// Remap carries IFS coordinates into pixel space:
//
//	px = OffsetX + x*ScaleX
//	py = OffsetY + y*ScaleY
//
// A negative ScaleY flips the image so that y grows upwards.
type Remap struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
}

// Identity plots IFS coordinates unchanged.
var Identity = Remap{ScaleX: 1, ScaleY: 1}

// Apply maps xy to pixel coordinates.
func (r Remap) Apply(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: r.OffsetX + xy.X*r.ScaleX,
		Y: r.OffsetY + xy.Y*r.ScaleY,
	}
}

// SierpinskiRemap fits the unit square onto a size x size surface, y up.
func SierpinskiRemap(size int) Remap {
	s := float64(size)
	return Remap{OffsetX: 0, OffsetY: s, ScaleX: s, ScaleY: -s}
}

// BarnsleyRemap draws the fern, which spans roughly x in [-2.2, 2.7] and
// y in [0, 10], at size/8 pixels per unit with its base on the bottom edge.
// The tip is clipped on surfaces smaller than 625 pixels.
func BarnsleyRemap(size int) Remap {
	s := float64(size)
	return Remap{OffsetX: 200, OffsetY: s, ScaleX: s / 8, ScaleY: -s / 8}
}

// DragonRemap places the dragon curve on a size x size surface.
func DragonRemap(size int) Remap {
	s := float64(size)
	return Remap{OffsetX: 200, OffsetY: 300, ScaleX: s / 3, ScaleY: s / 3}
}

var presets = map[string]func(int) Remap{
	"sierpinski": SierpinskiRemap,
	"barnsley":   BarnsleyRemap,
	"dragon":     DragonRemap,
	"identity":   func(int) Remap { return Identity },
}

// LookupRemap returns the named preset for a surface of the given size.
func LookupRemap(name string, size int) (Remap, error) {
	f, ok := presets[name]
	if !ok {
		return Remap{}, errors.New(errors.ErrCodeInvalidConfiguration, "unknown remap %q (known: %v)", name, RemapNames())
	}
	return f(size), nil
}

// RemapNames lists the remap presets in alphabetical order.
func RemapNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
