package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willbeason/chaos-game/pkg/buildinfo"
)

func mainCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "chaos",
		Short:   "chaos plays the chaos game to draw IFS fractals",
		Version: buildinfo.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(ifsCmd())
	cmd.AddCommand(triangleCmd())
	cmd.AddCommand(renderCmd())
	cmd.AddCommand(catalogsCmd())

	return cmd
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
