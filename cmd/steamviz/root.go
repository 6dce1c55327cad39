package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/config"
	"github.com/lixenwraith/steamviz/logger"
)

// Version is the current version of steamviz
var Version = "0.1.0"

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "steamviz [catalog]",
		Short: "Linked-view dashboard for a game catalog",
		Long: `steamviz shows a game catalog as three linked views: a price against
rating scatter plot, a stacked trend of yearly releases per genre and a
ranking of the most frequent tags.

Drag a rectangle on the scatter plot to select games; the trend, the ranking
and the header counter follow the selection. Hold the inspect modifier (alt by
default) or press i to hover for details without touching the selection.

Catalog formats:
  .json               cleaned records
  .csv                raw store dump, cleaned on load
  .db .sqlite         table written by 'steamviz clean'

Examples:
  steamviz                              # open the configured catalog
  steamviz games.json                   # open a specific catalog
  steamviz summary --price 0:20 --rate 0.8:
  steamviz clean raw.csv games.json`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts, args)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default: "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr (non-interactive commands)")

	root.AddCommand(
		newRunCmd(opts),
		newSummaryCmd(opts),
		newSnapshotCmd(opts),
		newCleanCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

func (o *globalOptions) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.path())
}

// cliLogger logs to stderr with --verbose, else to the configured file
func (o *globalOptions) cliLogger(cfg *config.Config, stderr io.Writer) (*logger.Logger, io.Closer, error) {
	if o.verbose {
		return logger.New(logger.Config{Writer: stderr, Format: cfg.Log.Format, Level: logger.ParseLevel("debug")}), nil, nil
	}
	return fileLogger(cfg)
}

// fileLogger opens the session log file when enabled
func fileLogger(cfg *config.Config) (*logger.Logger, io.Closer, error) {
	if !cfg.Log.Enabled {
		return logger.Discard(), nil, nil
	}
	f, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	l := logger.New(logger.Config{
		Writer:  f,
		Format:  cfg.Log.Format,
		Level:   logger.ParseLevel(cfg.Log.Level),
		NoColor: true,
	})
	return l, f, nil
}

// loadCatalog reads the catalog named by args or the config
func loadCatalog(ctx context.Context, cfg *config.Config, args []string, log *logger.Logger) (*catalog.Catalog, string, error) {
	path := cfg.Catalog.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, "", fmt.Errorf("no catalog: pass a path or set catalog.path")
	}
	c, err := catalog.Load(ctx, path, cfg.Catalog.Clean)
	if err != nil {
		return nil, path, err
	}
	log.Debug("catalog loaded", "path", filepath.Clean(path), "records", c.Len())
	return c, path, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}

func stderrOf(cmd *cobra.Command) io.Writer {
	if w := cmd.ErrOrStderr(); w != nil {
		return w
	}
	return os.Stderr
}
