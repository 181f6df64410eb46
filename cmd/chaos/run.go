package main

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/willbeason/chaos-game/pkg/chaos"
	"github.com/willbeason/chaos-game/pkg/config"
	"github.com/willbeason/chaos-game/pkg/plot"
	"github.com/willbeason/chaos-game/pkg/rng"
	"github.com/willbeason/chaos-game/pkg/triangle"
)

// render runs the generator described by cfg and saves the surface.
func render(ctx context.Context, cfg *config.Config) error {
	logger := loggerFromContext(ctx)

	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := plot.ParseFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}

	var surface plot.Surface = plot.NewCanvas(cfg.Size, cfg.Size)
	if cfg.Density {
		surface = plot.NewDensity(cfg.Size, cfg.Size)
	}

	prog := newProgress(logger)
	if cfg.IFS != nil {
		err = playIFS(logger, cfg, surface)
	} else {
		err = playTriangle(logger, cfg, surface)
	}
	if err != nil {
		return err
	}

	stats := surface.Stats()
	prog.done("Generated", "plotted", stats.Plotted, "clipped", stats.Clipped)

	if err := plot.Save(cfg.Output, surface.Image(), format); err != nil {
		return err
	}
	logger.Info("Saved", "path", cfg.Output, "format", format)
	return nil
}

func playIFS(logger *log.Logger, cfg *config.Config, sink plot.Sink) error {
	f := cfg.IFS

	catalog, err := f.BuildCatalog()
	if err != nil {
		return err
	}
	remap, err := f.BuildRemap(cfg.Size)
	if err != nil {
		return err
	}
	c, err := f.ParseColor()
	if err != nil {
		return err
	}
	start, err := f.StartPoint()
	if err != nil {
		return err
	}
	if nc := f.NonContractive(); len(nc) > 0 {
		logger.Warn("Catalog has non-contractive transforms; points may diverge", "entries", nc)
	}

	g, err := chaos.New(catalog, rng.New(cfg.Seed), sink,
		chaos.WithRemap(remap), chaos.WithColor(c), chaos.WithStart(start))
	if err != nil {
		return err
	}

	logger.Debug("Playing chaos game",
		"catalog", f.Catalog, "transforms", len(catalog), "total_weight", g.TotalWeight(),
		"runs", f.Runs, "remap", remap)
	g.Generate(f.Runs)
	logger.Debug("Finished", "point", g.Point())

	return nil
}

func playTriangle(logger *log.Logger, cfg *config.Config, sink plot.Sink) error {
	t := cfg.Triangle

	g, err := triangle.New(cfg.Size, rng.New(cfg.Seed), sink)
	if err != nil {
		return err
	}
	logger.Debug("Drawing triangle", "mode", t.Mode, "bounds", g.Bounds())

	if t.Mode == config.ModeRecursive {
		logger.Debug("Walking every vertex sequence", "depth", t.Depth, "plots", triangle.PlotCount(t.Depth))
		g.Run(t.Depth)
		return nil
	}

	logger.Debug("Rolling vertices", "runs", t.Runs)
	return g.Generate(t.Runs)
}
