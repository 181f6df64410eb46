package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willbeason/chaos-game/pkg/config"
)

func triangleCmd() *cobra.Command {
	var (
		out   outputFlags
		mode  string
		runs  int
		depth int
	)

	cmd := &cobra.Command{
		Use:   "triangle",
		Short: "Draw the Sierpinski triangle on the pixel grid",
		Long: `Draw the Sierpinski triangle by moving a point halfway towards one of three
vertices at a time.

In random mode each vertex is chosen by a die roll. In recursive mode every
sequence of vertex choices up to --depth is visited, which plots the same image
on every run.`,
		Example: `  chaos triangle --runs 100000
  chaos triangle --mode recursive --depth 9 -o out/sierpinski.bmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			cfg := out.config()
			cfg.Triangle = &config.Triangle{
				Mode:  mode,
				Runs:  runs,
				Depth: depth,
			}
			cfg.ApplyDefaults()

			return render(cmd.Context(), cfg)
		},
	}

	out.register(cmd, "out/triangle.bmp")
	cmd.Flags().StringVar(&mode, "mode", config.ModeRandom, "random or recursive")
	cmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of random steps")
	cmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, fmt.Sprintf("sequence length for recursive mode, at most %d", config.MaxDepth))

	return cmd
}
