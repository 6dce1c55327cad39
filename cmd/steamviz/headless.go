package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/config"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/logger"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

// headless is a coordinator without a terminal, for report commands
type headless struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Catalog
	path    string
	co      *dashboard.Coordinator
	metrics *status.Registry
	close   func()
}

func openHeadless(cmd *cobra.Command, opts *globalOptions, args []string) (*headless, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	log, closer, err := opts.cliLogger(cfg, stderrOf(cmd))
	if err != nil {
		return nil, err
	}
	c, path, err := loadCatalog(cmd.Context(), cfg, args, log)
	if err != nil {
		closeQuietly(closer)
		return nil, err
	}

	metrics := status.NewRegistry()
	// Geometry is irrelevant without pointer input: selections arrive in data units
	surface := selection.NewSurface(1, 1, 0, cfg.Axes.PriceMax, cfg.Axes.RateMin, cfg.Axes.RateMax)
	co := dashboard.NewCoordinator(c, surface,
		dashboard.WithLogger(log.Logger),
		dashboard.WithMetrics(metrics),
		dashboard.WithOptions(dashboard.Options{Window: cfg.Trend, TopN: cfg.Ranking.TopN}),
	)
	return &headless{
		cfg:     cfg,
		log:     log,
		catalog: c,
		path:    path,
		co:      co,
		metrics: metrics,
		close:   func() { closeQuietly(closer) },
	}, nil
}
