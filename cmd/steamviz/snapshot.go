package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/steamviz/export"
	"github.com/lixenwraith/steamviz/render"
)

func newSnapshotCmd(opts *globalOptions) *cobra.Command {
	var (
		sf     *selectionFlags
		outDir string
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "snapshot [catalog]",
		Short: "Write the three views as SVG files",
		Long: `Apply a selection without the terminal UI and write the scatter, trend
and ranking views as SVG files. Views with nothing to draw are skipped.

Examples:
  steamviz snapshot --out plots --price 0:20 --rate 0.8:`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHeadless(cmd, opts, args)
			if err != nil {
				return err
			}
			defer h.close()

			palette, err := render.NewPalette(h.cfg.Palette)
			if err != nil {
				return fmt.Errorf("palette: %w", err)
			}
			snap := &export.Snapshot{
				Dir:     h.cfg.Snapshot.Dir,
				Size:    export.Size{Width: h.cfg.Snapshot.Width, Height: h.cfg.Snapshot.Height},
				Catalog: h.catalog,
				Palette: palette,
			}
			if cmd.Flags().Changed("out") {
				snap.Dir = outDir
			}
			if cmd.Flags().Changed("width") {
				snap.Size.Width = width
			}
			if cmd.Flags().Changed("height") {
				snap.Size.Height = height
			}

			v := h.co.SetSelection(sf.rect())
			paths, err := snap.Write(v)
			if err != nil {
				return err
			}
			h.log.Info("snapshot written", "files", len(paths), "dir", snap.Dir, "selected", v.Summary.Selected)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: snapshot.dir)")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels (default: snapshot.width)")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels (default: snapshot.height)")
	sf = addSelectionFlags(cmd)
	return cmd
}
