package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/render"
)

// View names used in snapshot file names
const (
	ViewScatter = "scatter"
	ViewTrend   = "trend"
	ViewRanking = "ranking"
)

// Snapshot writes the three views of a dashboard state to SVG files
type Snapshot struct {
	Dir     string
	Size    Size
	Catalog *catalog.Catalog
	Palette render.Palette

	// now is replaced in tests
	now func() time.Time
}

// Write saves every non-empty view as <dir>/steamviz_<stamp>_<view>.svg and
// returns the written paths in view order. Empty views are skipped
func (s *Snapshot) Write(v dashboard.View) ([]string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	stamp := now().Format("20060102_150405")

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ViewScatter, func(w io.Writer) error { return WriteScatter(w, s.Catalog, v, s.Palette, s.Size) }},
		{ViewTrend, func(w io.Writer) error { return WriteTrend(w, v, s.Palette, s.Size) }},
		{ViewRanking, func(w io.Writer) error { return WriteRanking(w, v, s.Palette, s.Size) }},
	}

	var paths []string
	for _, wr := range writers {
		var buf bytes.Buffer
		if err := wr.write(&buf); err != nil {
			if errors.Is(err, ErrEmpty) {
				continue
			}
			return paths, fmt.Errorf("%s: %w", wr.name, err)
		}
		path := filepath.Join(s.Dir, fmt.Sprintf("steamviz_%s_%s.svg", stamp, wr.name))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", wr.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
