package views

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"airport-analyser/models"
	"airport-analyser/services/analysis"
	"airport-analyser/utils"
)

// Chart is a rendered histogram ready to be shown.
type Chart struct {
	Name  string // file-name friendly
	Title string
	Image image.Image
}

// Viewer presents a chart. Show returns only once the chart has been
// dismissed (or persisted, for non-interactive viewers).
type Viewer interface {
	Show(c Chart) error
}

// ChartRenderer turns a record table into the hourly departures histogram
// and hands it to a Viewer.
type ChartRenderer struct {
	cfg         utils.ChartConfig
	windowHours int
	palette     Palette
	viewer      Viewer
}

// NewChartRenderer builds a renderer drawing with cfg over windowHours bins.
func NewChartRenderer(cfg utils.ChartConfig, windowHours int, viewer Viewer) *ChartRenderer {
	return &ChartRenderer{
		cfg:         cfg,
		windowHours: windowHours,
		palette:     PaletteFromConfig(cfg),
		viewer:      viewer,
	}
}

// Image draws the histogram without showing it.
func (r *ChartRenderer) Image(req ChartRequest, table *models.RecordTable) *image.RGBA {
	bins := analysis.HourBins(table, req.AirlineCode, r.windowHours)
	return DrawChart(LayoutChart(req, bins, r.cfg), r.palette)
}

// Render draws the histogram and blocks until the viewer is done with it.
func (r *ChartRenderer) Render(req ChartRequest, table *models.RecordTable) error {
	img := r.Image(req, table)
	utils.L().Debug("chart %s rendered (%dx%d)", req.Slug(), img.Bounds().Dx(), img.Bounds().Dy())
	if err := r.viewer.Show(Chart{Name: req.Slug(), Title: req.Title(), Image: img}); err != nil {
		return fmt.Errorf("show chart: %w", err)
	}
	return nil
}

// PNGViewer writes charts as PNG files instead of displaying them, for
// machines without a display.
type PNGViewer struct {
	dir string
}

// NewPNGViewer writes under dir, created on first use.
func NewPNGViewer(dir string) *PNGViewer {
	return &PNGViewer{dir: dir}
}

// Show encodes c to <dir>/<name>_<stamp>.png.
func (v *PNGViewer) Show(c Chart) error {
	if err := os.MkdirAll(v.dir, 0755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image); err != nil {
		return fmt.Errorf("png encode %s: %w", c.Name, err)
	}
	path := filepath.Join(v.dir, utils.ArtifactName(c.Name, "png"))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	utils.L().Info("chart written to %s", path)
	return nil
}
