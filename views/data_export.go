package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"airport-analyser/models"
	"airport-analyser/utils"
)

// CSVWriter is a buffered CSV appender. Rows accumulate in a bufio.Writer
// and reach the file on Flush; the header is written only when the file
// starts out empty, so repeated runs extend one file.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter opens (or creates) path for appending and writes header if
// the file is new or empty.
func NewCSVWriter(path string, bufSizeBytes int, header []string) (*CSVWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("csv open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("csv stat %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 32 * 1024
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if st.Size() == 0 && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row.
func (w *CSVWriter) WriteRow(row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush pushes the buffered data to the OS.
func (w *CSVWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.buf.Flush()
}

// Close flushes remaining data, syncs and closes the file.
func (w *CSVWriter) Close() error {
	ferr := w.Flush()
	w.mu.Lock()
	defer w.mu.Unlock()
	serr := w.file.Sync()
	cerr := w.file.Close()
	for _, err := range []error{ferr, serr, cerr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}

// CSVReportLog keeps one summary row per report in a CSV file.
type CSVReportLog struct {
	path string
}

// NewCSVReportLog returns a summary sink writing to path.
func NewCSVReportLog(path string) *CSVReportLog {
	return &CSVReportLog{path: path}
}

// Name identifies the sink in logs.
func (l *CSVReportLog) Name() string { return "csv:" + l.path }

// Append writes one row and closes the file before returning.
func (l *CSVReportLog) Append(airportName string, year int, report models.MetricsReport) error {
	return l.appendRecord(&models.ReportSummary{Airport: airportName, Year: year, Report: report})
}

func (l *CSVReportLog) appendRecord(rec models.CSVRowWriter) error {
	w, err := NewCSVWriter(l.path, 0, rec.CSVHeader())
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}
	if err := w.WriteRow(rec.CSVRow()); err != nil {
		w.Close()
		return fmt.Errorf("%w: csv row: %w", models.ErrWrite, err)
	}
	rows := w.Rows()
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrWrite, l.path, err)
	}
	utils.L().Debug("%s: %d row(s) appended", l.path, rows)
	return nil
}
