// Package config reads chaos-game run descriptions from TOML.
//
// A file describes one render: the surface size and output, plus either an
// [ifs] table for the weighted chaos game or a [triangle] table for the
// Sierpinski triangle generator.
package config

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/willbeason/chaos-game/pkg/chaos"
	"github.com/willbeason/chaos-game/pkg/errors"
	"github.com/willbeason/chaos-game/pkg/geometry"
	"github.com/willbeason/chaos-game/pkg/plot"
	"github.com/willbeason/chaos-game/pkg/transforms"
	"github.com/willbeason/chaos-game/pkg/triangle"
)

const (
	DefaultSize   = 500
	DefaultRuns   = 100000
	DefaultDepth  = 9
	MaxDepth      = triangle.MaxDepth
	DefaultOutput = "out/chaos.bmp"

	// CustomCatalog selects the [[ifs.transforms]] entries of the file.
	CustomCatalog = "custom"

	ModeRandom    = "random"
	ModeRecursive = "recursive"
)

// Config is a complete run description.
type Config struct {
	Size    int    `toml:"size"`
	Seed    int64  `toml:"seed"`
	Output  string `toml:"output"`
	Format  string `toml:"format"`
	Density bool   `toml:"density"`

	IFS      *IFS      `toml:"ifs"`
	Triangle *Triangle `toml:"triangle"`
}

// IFS configures the weighted chaos game.
type IFS struct {
	Catalog     string       `toml:"catalog"`
	Runs        int          `toml:"runs"`
	Color       string       `toml:"color"`
	Start       []float64    `toml:"start"`
	Remap       string       `toml:"remap"`
	AffineRemap *AffineRemap `toml:"affine_remap"`
	Transforms  []Affine     `toml:"transforms"`
}

// AffineRemap spells out a pixel-space remap.
type AffineRemap struct {
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
	ScaleX  float64 `toml:"scale_x"`
	ScaleY  float64 `toml:"scale_y"`
}

// Affine is one weighted entry of a custom catalog.
type Affine struct {
	A      float64 `toml:"a"`
	B      float64 `toml:"b"`
	C      float64 `toml:"c"`
	D      float64 `toml:"d"`
	E      float64 `toml:"e"`
	F      float64 `toml:"f"`
	Weight int     `toml:"weight"`
}

// Triangle configures the Sierpinski triangle generator.
type Triangle struct {
	Mode  string `toml:"mode"`
	Runs  int    `toml:"runs"`
	Depth int    `toml:"depth"`
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading config %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML document, filling in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parsing config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown config keys: %v", undecoded)
	}

	cfg.defaultUndefined(md)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultUndefined fills the numeric fields whose keys the document leaves
// out. A key set to zero keeps its zero.
func (c *Config) defaultUndefined(md toml.MetaData) {
	if !md.IsDefined("size") {
		c.Size = DefaultSize
	}
	if c.IFS != nil && !md.IsDefined("ifs", "runs") {
		c.IFS.Runs = DefaultRuns
	}
	if c.Triangle != nil {
		if !md.IsDefined("triangle", "runs") {
			c.Triangle.Runs = DefaultRuns
		}
		if !md.IsDefined("triangle", "depth") {
			c.Triangle.Depth = DefaultDepth
		}
	}
}

// ApplyDefaults fills empty string fields, which have no valid zero value. A
// built-in catalog without an explicit remap gets the preset of the same name.
// Numeric fields are left alone so that an explicit zero survives.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.IFS != nil && c.IFS.Remap == "" && c.IFS.AffineRemap == nil && c.IFS.Catalog != CustomCatalog {
		c.IFS.Remap = c.IFS.Catalog
	}
	if c.Triangle != nil && c.Triangle.Mode == "" {
		c.Triangle.Mode = ModeRandom
	}
}

// Validate reports the first problem that would stop the run.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "size must be positive, got %d", c.Size)
	}
	if _, err := plot.ParseFormat(c.Format, c.Output); err != nil {
		return err
	}

	switch {
	case c.IFS == nil && c.Triangle == nil:
		return errors.New(errors.ErrCodeInvalidConfiguration, "config needs an [ifs] or [triangle] table")
	case c.IFS != nil && c.Triangle != nil:
		return errors.New(errors.ErrCodeInvalidConfiguration, "config may hold only one of [ifs] and [triangle]")
	case c.IFS != nil:
		return c.IFS.validate(c.Size)
	default:
		return c.Triangle.validate()
	}
}

func (f *IFS) validate(size int) error {
	if f.Runs < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "ifs.runs must not be negative, got %d", f.Runs)
	}
	if _, err := f.BuildCatalog(); err != nil {
		return err
	}
	if _, err := f.BuildRemap(size); err != nil {
		return err
	}
	if _, err := f.ParseColor(); err != nil {
		return err
	}
	if _, err := f.StartPoint(); err != nil {
		return err
	}
	return nil
}

func (t *Triangle) validate() error {
	switch t.Mode {
	case ModeRandom:
		if t.Runs < 0 {
			return errors.New(errors.ErrCodeInvalidConfiguration, "triangle.runs must not be negative, got %d", t.Runs)
		}
	case ModeRecursive:
		if t.Depth < 0 || t.Depth > MaxDepth {
			return errors.New(errors.ErrCodeInvalidConfiguration, "triangle.depth must be in [0, %d], got %d", MaxDepth, t.Depth)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfiguration, "unknown triangle mode %q (want %s or %s)", t.Mode, ModeRandom, ModeRecursive)
	}
	return nil
}

// BuildCatalog returns the named built-in catalog, or the custom transforms
// when Catalog is "custom".
func (f *IFS) BuildCatalog() (transforms.Catalog, error) {
	if f.Catalog != CustomCatalog {
		if len(f.Transforms) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "ifs.transforms requires catalog = %q", CustomCatalog)
		}
		return transforms.Lookup(f.Catalog)
	}

	catalog := make(transforms.Catalog, 0, len(f.Transforms))
	for _, t := range f.Transforms {
		catalog = append(catalog, transforms.Weighted{
			Transform: transforms.Affine{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t.F},
			Weight:    t.Weight,
		})
	}
	if _, err := catalog.TotalWeight(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// NonContractive returns the indices of custom transforms that do not shrink
// distances. Such catalogs may never settle on an attractor.
func (f *IFS) NonContractive() []int {
	var idx []int
	for i, t := range f.Transforms {
		a := transforms.Affine{A: t.A, B: t.B, C: t.C, D: t.D}
		if !a.Contractive() {
			idx = append(idx, i)
		}
	}
	return idx
}

// BuildRemap resolves the remap preset or explicit affine remap.
func (f *IFS) BuildRemap(size int) (chaos.Remap, error) {
	if f.AffineRemap != nil {
		if f.Remap != "" {
			return chaos.Remap{}, errors.New(errors.ErrCodeInvalidConfiguration, "set only one of ifs.remap and [ifs.affine_remap]")
		}
		r := f.AffineRemap
		return chaos.Remap{OffsetX: r.OffsetX, OffsetY: r.OffsetY, ScaleX: r.ScaleX, ScaleY: r.ScaleY}, nil
	}
	if f.Remap == "" {
		return chaos.Identity, nil
	}
	return chaos.LookupRemap(f.Remap, size)
}

// ParseColor returns the plot colour, defaulting to red.
func (f *IFS) ParseColor() (color.Color, error) {
	if f.Color == "" {
		return chaos.Red, nil
	}
	return ParseColor(f.Color)
}

// StartPoint returns the initial point, defaulting to chaos.Start.
func (f *IFS) StartPoint() (geometry.XY, error) {
	switch len(f.Start) {
	case 0:
		return chaos.Start, nil
	case 2:
		return geometry.XY{X: f.Start[0], Y: f.Start[1]}, nil
	}
	return geometry.XY{}, errors.New(errors.ErrCodeInvalidConfiguration, "ifs.start must hold two numbers, got %d", len(f.Start))
}

// ParseColor parses a "#rrggbb" hex colour.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
