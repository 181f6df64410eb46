package main

import (
	"github.com/spf13/cobra"

	"github.com/willbeason/chaos-game/pkg/config"
)

// outputFlags are shared by every command that writes an image.
type outputFlags struct {
	size    int
	seed    int64
	output  string
	format  string
	density bool
}

func (o *outputFlags) register(cmd *cobra.Command, output string) {
	cmd.Flags().IntVar(&o.size, "size", config.DefaultSize, "width and height of the image in pixels")
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "random seed; 0 seeds from the clock")
	cmd.Flags().StringVarP(&o.output, "out", "o", output, "output image path")
	cmd.Flags().StringVar(&o.format, "format", "", "image format, bmp or png (default: from --out extension)")
	cmd.Flags().BoolVar(&o.density, "density", false, "render hit density in grayscale instead of colours")
}

func (o *outputFlags) config() *config.Config {
	return &config.Config{
		Size:    o.size,
		Seed:    o.seed,
		Output:  o.output,
		Format:  o.format,
		Density: o.density,
	}
}

func ifsCmd() *cobra.Command {
	var (
		out     outputFlags
		catalog string
		runs    int
		color   string
		remap   string
	)

	cmd := &cobra.Command{
		Use:   "ifs",
		Short: "Draw a fractal from a weighted catalog of affine transforms",
		Example: `  chaos ifs --catalog barnsley --runs 200000 -o out/fern.bmp
  chaos ifs --catalog dragon --remap dragon --color "#0000ff"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			cfg := out.config()
			cfg.IFS = &config.IFS{
				Catalog: catalog,
				Runs:    runs,
				Color:   color,
				Remap:   remap,
			}
			cfg.ApplyDefaults()

			return render(cmd.Context(), cfg)
		},
	}

	out.register(cmd, "out/ifs.bmp")
	cmd.Flags().StringVar(&catalog, "catalog", "sierpinski", "built-in catalog: sierpinski, barnsley or dragon")
	cmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of points to plot")
	cmd.Flags().StringVar(&color, "color", "#ff0000", "plot colour as #rrggbb")
	cmd.Flags().StringVar(&remap, "remap", "", "pixel remap preset (default: same as --catalog)")

	return cmd
}
