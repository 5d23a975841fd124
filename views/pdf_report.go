package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"airport-analyser/models"
	"airport-analyser/utils"
)

// PDFReportWriter writes each report as its own single-page PDF.
type PDFReportWriter struct {
	dir string
}

// NewPDFReportWriter returns a sink writing PDFs under dir (created on
// first use).
func NewPDFReportWriter(dir string) *PDFReportWriter {
	return &PDFReportWriter{dir: dir}
}

// Name identifies the sink in logs.
func (w *PDFReportWriter) Name() string { return "pdf:" + w.dir }

// Append renders the report to <dir>/<airport>_<year>_<stamp>.pdf.
func (w *PDFReportWriter) Append(airportName string, year int, report models.MetricsReport) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("%w: create pdf dir: %w", models.ErrWrite, err)
	}
	prefix := fmt.Sprintf("%s_%d", strings.ReplaceAll(airportName, " ", "_"), year)
	path := filepath.Join(w.dir, utils.ArtifactName(prefix, "pdf"))

	pdf := BuildReportPDF(airportName, year, report)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrWrite, path, err)
	}
	utils.L().Debug("pdf report written to %s", path)
	return nil
}

// BuildReportPDF lays the report out as a two-column table.
func BuildReportPDF(airportName string, year int, report models.MetricsReport) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := fmt.Sprintf("Departures from %s, %d", airportName, year)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	const labelW, valueW, rowH = 130.0, 50.0, 8.0
	pdf.SetFont("Helvetica", "", 10)
	for i, e := range report {
		// zebra rows, same pastel as the chart background
		fill := i%2 == 0
		pdf.SetFillColor(245, 235, 245)
		pdf.CellFormat(labelW, rowH, tr(e.Label), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(valueW, rowH, tr(e.Value), "1", 1, "R", fill, 0, "")
	}
	return pdf
}
