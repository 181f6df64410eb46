package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willbeason/chaos-game/pkg/chaos"
	"github.com/willbeason/chaos-game/pkg/config"
	"github.com/willbeason/chaos-game/pkg/transforms"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <config.toml>",
		Short: "Render a fractal described by a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("Loaded config", "path", args[0])

			return render(cmd.Context(), cfg)
		},
	}

	return cmd
}

func catalogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogs",
		Short: "List the built-in transform catalogs and remap presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATALOG\tTRANSFORMS\tWEIGHTS")
			for _, name := range transforms.Names() {
				catalog, err := transforms.Lookup(name)
				if err != nil {
					return err
				}
				weights := make([]int, len(catalog))
				for i, t := range catalog {
					weights[i] = t.Weight
				}
				fmt.Fprintf(w, "%s\t%d\t%v\n", name, len(catalog), weights)
			}
			fmt.Fprintf(w, "\nremap presets: %v\n", chaos.RemapNames())
			return w.Flush()
		},
	}

	return cmd
}
