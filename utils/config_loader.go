package utils

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"airport-analyser/models"
)

// ─── Analyser config ────────────────────────────────────────────────────

type PathsConfig struct {
	DataDir     string `yaml:"data_dir"`
	ResultsFile string `yaml:"results_file"`
	SummaryCSV  string `yaml:"summary_csv"` // empty = disabled
	PDFDir      string `yaml:"pdf_dir"`     // empty = disabled
}

// FieldPolicy decides what a malformed record field does to a report.
type FieldPolicy string

const (
	PolicyStrict  FieldPolicy = "strict"  // abort the report
	PolicyLenient FieldPolicy = "lenient" // drop the record from that metric only
)

type MetricsConfig struct {
	FieldPolicy FieldPolicy `yaml:"field_policy"`
	WindowHours int         `yaml:"window_hours"`
}

type YearsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ChartConfig is the geometry and palette of the departures histogram, in
// pixels on a Width x Height canvas.
type ChartConfig struct {
	Viewer       string `yaml:"viewer"` // "window" or "png"
	PNGDir       string `yaml:"png_dir"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	BarWidth     int    `yaml:"bar_width"`
	BarGap       int    `yaml:"bar_gap"`
	MarginX      int    `yaml:"margin_x"`
	BaseY        int    `yaml:"base_y"`
	MaxBarHeight int    `yaml:"max_bar_height"`
	TitleY       int    `yaml:"title_y"`
	CaptionY     int    `yaml:"caption_y"`
	Background   string `yaml:"background"`
	BarFill      string `yaml:"bar_fill"`
	BarOutline   string `yaml:"bar_outline"`
	Text         string `yaml:"text"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AnalyserConfig is the top-level structure for analyser.yaml.
type AnalyserConfig struct {
	Paths   PathsConfig   `yaml:"paths"`
	Metrics MetricsConfig `yaml:"metrics"`
	Years   YearsConfig   `yaml:"years"`
	Chart   ChartConfig   `yaml:"chart"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultAnalyserConfig returns the settings used when no config file is
// present. Keys missing from a config file keep these values.
func DefaultAnalyserConfig() *AnalyserConfig {
	return &AnalyserConfig{
		Paths: PathsConfig{
			DataDir:     ".",
			ResultsFile: "results.txt",
		},
		Metrics: MetricsConfig{FieldPolicy: PolicyStrict, WindowHours: 12},
		Years:   YearsConfig{Min: 2000, Max: 2025},
		Chart: ChartConfig{
			Viewer:       "window",
			PNGDir:       "charts",
			Width:        900,
			Height:       400,
			BarWidth:     60,
			BarGap:       10,
			MarginX:      50,
			BaseY:        340,
			MaxBarHeight: 250,
			TitleY:       25,
			CaptionY:     370,
			Background:   "#f5ebf5",
			BarFill:      "#b4ebc8",
			BarOutline:   "#000000",
			Text:         "#000000",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate rejects settings the analyser cannot run with.
func (c *AnalyserConfig) Validate() error {
	switch c.Metrics.FieldPolicy {
	case PolicyStrict, PolicyLenient:
	default:
		return fmt.Errorf("metrics.field_policy %q: want strict or lenient", c.Metrics.FieldPolicy)
	}
	if c.Metrics.WindowHours <= 0 {
		return fmt.Errorf("metrics.window_hours must be positive, got %d", c.Metrics.WindowHours)
	}
	if c.Years.Min > c.Years.Max {
		return fmt.Errorf("years.min %d is after years.max %d", c.Years.Min, c.Years.Max)
	}
	switch c.Chart.Viewer {
	case "window", "png":
	default:
		return fmt.Errorf("chart.viewer %q: want window or png", c.Chart.Viewer)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 || c.Chart.MaxBarHeight <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if c.Paths.ResultsFile == "" {
		return fmt.Errorf("paths.results_file is required")
	}
	return nil
}

// ─── Reference data ─────────────────────────────────────────────────────

//go:embed reference.yaml
var defaultReference []byte

type referenceFile struct {
	Airports     map[string]string `yaml:"airports"`
	Airlines     map[string]string `yaml:"airlines"`
	Destinations map[string]string `yaml:"destinations"`
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadAnalyserConfig reads and parses analyser.yaml on top of the defaults.
// A missing file is not an error: the defaults are returned.
func LoadAnalyserConfig(path string) (*AnalyserConfig, error) {
	cfg := DefaultAnalyserConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		L().Warn("config %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read analyser config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse analyser config: %w", err)
	}
	cfg.Metrics.FieldPolicy = FieldPolicy(strings.ToLower(string(cfg.Metrics.FieldPolicy)))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("analyser config: %w", err)
	}
	return cfg, nil
}

// LoadReference parses reference data from path, or the compiled-in tables
// when path is empty.
func LoadReference(path string) (*models.Reference, error) {
	data := defaultReference
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read reference data: %w", err)
		}
	}
	return parseReference(data)
}

func parseReference(data []byte) (*models.Reference, error) {
	var rf referenceFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	if len(rf.Airports) == 0 || len(rf.Airlines) == 0 {
		return nil, fmt.Errorf("reference data needs at least one airport and one airline")
	}
	airports := make(map[string]string, len(rf.Airports))
	for k, v := range rf.Airports {
		airports[strings.ToUpper(k)] = v
	}
	airlines := make(map[string]string, len(rf.Airlines))
	for k, v := range rf.Airlines {
		airlines[strings.ToUpper(k)] = v
	}
	return models.NewReference(airports, airlines, rf.Destinations), nil
}
