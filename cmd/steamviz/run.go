package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/steamviz/app"
	"github.com/lixenwraith/steamviz/audio"
	"github.com/lixenwraith/steamviz/status"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [catalog]",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive dashboard. This is also what steamviz does without a
subcommand.

Keys:
  drag        select on the scatter plot
  alt         hold to inspect, hover shows details
  i           toggle inspect
  esc r       clear the selection
  tab         toggle stats in the status bar
  s           save SVG snapshots
  m           mute cues
  q ctrl-c    quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts, args)
		},
	}
}

func runDashboard(cmd *cobra.Command, opts *globalOptions, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	// stderr belongs to the terminal UI: file logging only
	log, closer, err := fileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, _, err := loadCatalog(ctx, cfg, args, log)
	if err != nil {
		return err
	}

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without cues")
			player = nil
		}
	}

	a, err := app.New(app.Options{
		Config:  cfg,
		Catalog: c,
		Logger:  log,
		Metrics: status.NewRegistry(),
		Audio:   player,
	})
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(ctx)
}
