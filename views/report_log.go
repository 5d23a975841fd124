package views

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"airport-analyser/models"
)

// SeparatorWidth is the number of dashes closing each report block.
const SeparatorWidth = 50

// TextReportLog appends report blocks to a plain-text results file. Earlier
// content is never rewritten.
type TextReportLog struct {
	path string
}

// NewTextReportLog returns a sink appending to path.
func NewTextReportLog(path string) *TextReportLog {
	return &TextReportLog{path: path}
}

// Name identifies the sink in logs.
func (l *TextReportLog) Name() string { return "text:" + l.path }

// Append writes one block and syncs it to disk before returning. Any failure
// wraps models.ErrWrite.
func (l *TextReportLog) Append(airportName string, year int, report models.MetricsReport) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}

	bw := bufio.NewWriter(f)
	werr := WriteReportBlock(bw, airportName, year, report)
	if werr == nil {
		werr = bw.Flush()
	}
	if werr == nil {
		werr = f.Sync()
	}
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrWrite, l.path, werr)
	}
	return nil
}

// WriteReportBlock renders one report block:
//
//	Airport: <name>
//	Year: <year>
//	<label>: <value>
//	--------------------------------------------------
func WriteReportBlock(w io.Writer, airportName string, year int, report models.MetricsReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Airport: %s\nYear: %d\n", airportName, year)
	for _, e := range report {
		fmt.Fprintf(&b, "%s: %s\n", e.Label, e.Value)
	}
	b.WriteString(strings.Repeat("-", SeparatorWidth))
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
