package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/steamviz/catalog"
)

func newCleanCmd(opts *globalOptions) *cobra.Command {
	var clean catalog.CleanOptions
	cmd := &cobra.Command{
		Use:   "clean <raw.csv> <out.json|out.db>",
		Short: "Clean and sample a raw store dump into a catalog",
		Long: `Read a raw CSV dump, drop rows without a usable release year or with too
few ratings, keep every row above the hot threshold plus a seeded sample of
the rest, and write the result as JSON or SQLite by output extension.

Examples:
  steamviz clean steam.csv games.json
  steamviz clean steam.csv games.db --fraction 0.1 --seed 7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log, closer, err := opts.cliLogger(cfg, stderrOf(cmd))
			if err != nil {
				return err
			}
			defer closeQuietly(closer)

			// flags override the configured cleaning options field by field
			o := cfg.Catalog.Clean
			f := cmd.Flags()
			if f.Changed("min-ratings") {
				o.MinRatings = clean.MinRatings
			}
			if f.Changed("hot") {
				o.HotThreshold = clean.HotThreshold
			}
			if f.Changed("fraction") {
				o.SampleFraction = clean.SampleFraction
			}
			if f.Changed("seed") {
				o.Seed = clean.Seed
			}
			if o.SampleFraction < 0 || o.SampleFraction > 1 {
				return fmt.Errorf("fraction must be in [0,1], got %g", o.SampleFraction)
			}

			in, out := args[0], args[1]
			src, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open raw dump: %w", err)
			}
			defer src.Close()

			rows, err := catalog.ReadRawCSV(src)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			records := catalog.Clean(rows, o)
			log.Debug("cleaned", "rows", len(rows), "kept", len(records), "options", o)

			if err := writeCatalog(cmd, out, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kept %s of %s rows\n",
				humanize.Comma(int64(len(records))), humanize.Comma(int64(len(rows))))
			return nil
		},
	}
	d := catalog.DefaultCleanOptions()
	cmd.Flags().IntVar(&clean.MinRatings, "min-ratings", d.MinRatings, "Drop rows with fewer total ratings")
	cmd.Flags().IntVar(&clean.HotThreshold, "hot", d.HotThreshold, "Always keep rows with at least this many ratings")
	cmd.Flags().Float64Var(&clean.SampleFraction, "fraction", d.SampleFraction, "Fraction of the remaining rows to keep")
	cmd.Flags().Uint64Var(&clean.Seed, "seed", d.Seed, "Sampling seed")
	return cmd
}

func writeCatalog(cmd *cobra.Command, path string, records []catalog.GameRecord) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return catalog.SaveSQLite(cmd.Context(), path, records)
	case ".json":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := catalog.WriteJSON(f, records); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output %q: use .json or .db", path)
	}
}
