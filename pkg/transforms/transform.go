package transforms

import (
	"math"

	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
	"github.com/willbeason/chaos-game/pkg/rng"
)

// A Transform maps a point to its image. Implementations must be pure.
type Transform interface {
	Next(geometry.XY) geometry.XY
}

// Weighted pairs a Transform with its integer selection weight.
type Weighted struct {
	Transform
	Weight int
}

// A Catalog is an ordered set of weighted transforms. Entry i is selected with
// probability Weight_i / TotalWeight.
type Catalog []Weighted

// TotalWeight returns the sum of the catalog's weights.
//
// The catalog is rejected with INVALID_CONFIGURATION if it is empty, has a
// negative weight, sums to zero or sums past what a Source can draw.
func (c Catalog) TotalWeight() (int, error) {
	if len(c) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog is empty")
	}

	total := 0
	for i, w := range c {
		if w.Transform == nil {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog entry %d has no transform", i)
		}
		if w.Weight < 0 {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog entry %d has negative weight %d", i, w.Weight)
		}
		if w.Weight > math.MaxInt-total {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog weights overflow at entry %d", i)
		}
		total += w.Weight
	}

	if total == 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "total weight is zero")
	}
	return total, nil
}

// Select draws one entry index with probability proportional to its weight.
//
// total is the precomputed TotalWeight; pass 0 to have it computed. A draw r
// in [0, total) picks the first entry whose running weight sum exceeds r, so
// entry i covers [sum_{i-1}, sum_i). Exactly one draw is taken from src.
//
// An empty catalog, or a negative weight met during the walk, fails with
// INVALID_CONFIGURATION even when total is supplied. A walk that finds no entry
// panics with INTERNAL_INVARIANT; this happens only if total exceeds the
// catalog's real sum.
func (c Catalog) Select(src rng.Source, total int) (int, error) {
	if len(c) == 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog is empty")
	}
	if total == 0 {
		var err error
		total, err = c.TotalWeight()
		if err != nil {
			return 0, err
		}
	}
	if total < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfiguration, "total weight %d is negative", total)
	}

	r := rng.Uniform(src, 0, total)

	running := 0
	for i, w := range c {
		if w.Weight < 0 {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "catalog entry %d has negative weight %d", i, w.Weight)
		}
		running += w.Weight
		if r < running {
			return i, nil
		}
	}

	errors.Invariant("draw %d fell outside catalog of total weight %d", r, running)
	return 0, nil
}
