package controller

import (
	"fmt"
	"sync/atomic"

	"airport-analyser/models"
	"airport-analyser/utils"
	"airport-analyser/views"
)

// ReportSink persists one metrics report.
type ReportSink interface {
	Name() string
	Append(airportName string, year int, report models.MetricsReport) error
}

// ReportController is the save stage. It fans each report out to:
//   - the text results log (always)
//   - a CSV summary (paths.summary_csv, optional)
//   - one PDF per report (paths.pdf_dir, optional)
//
// Sinks are written in that order; the first failure stops the save.
type ReportController struct {
	sinks []ReportSink
	saved uint64
}

// NewReportController builds the sinks enabled in cfg.
func NewReportController(cfg *utils.AnalyserConfig) *ReportController {
	sinks := []ReportSink{views.NewTextReportLog(cfg.Paths.ResultsFile)}
	if cfg.Paths.SummaryCSV != "" {
		sinks = append(sinks, views.NewCSVReportLog(cfg.Paths.SummaryCSV))
	}
	if cfg.Paths.PDFDir != "" {
		sinks = append(sinks, views.NewPDFReportWriter(cfg.Paths.PDFDir))
	}
	rc := NewReportControllerWithSinks(sinks...)
	utils.L().Info("report controller ready  (sinks=%d)", len(sinks))
	return rc
}

// NewReportControllerWithSinks uses the given sinks as-is.
func NewReportControllerWithSinks(sinks ...ReportSink) *ReportController {
	return &ReportController{sinks: sinks}
}

// Save writes report to every sink. The error wraps models.ErrWrite.
func (rc *ReportController) Save(airportName string, year int, report models.MetricsReport) error {
	for _, s := range rc.sinks {
		if err := s.Append(airportName, year, report); err != nil {
			utils.L().Error("save to %s failed: %v", s.Name(), err)
			return fmt.Errorf("save to %s: %w", s.Name(), err)
		}
		utils.L().Debug("report saved to %s", s.Name())
	}
	atomic.AddUint64(&rc.saved, 1)
	return nil
}

// Saved returns how many reports were fully persisted.
func (rc *ReportController) Saved() uint64 {
	return atomic.LoadUint64(&rc.saved)
}
