package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"airport-analyser/models"
	"airport-analyser/utils"
)

// DeparturesReader loads {airport}{year}.csv departure logs from a data
// directory.
type DeparturesReader struct {
	dataDir string
}

// NewDeparturesReader wires up a reader rooted at dataDir.
func NewDeparturesReader(dataDir string) *DeparturesReader {
	if dataDir == "" {
		dataDir = "."
	}
	return &DeparturesReader{dataDir: dataDir}
}

// Path returns the file a load of (airport, year) reads.
func (r *DeparturesReader) Path(airport string, year int) string {
	return filepath.Join(r.dataDir, utils.SourceFileName(airport, year))
}

// Load reads every row after the header, in file order. Field values are
// not checked here.
//
// On failure the returned table is empty but non-nil, and the error wraps
// models.ErrIO, so callers can report it and carry on.
func (r *DeparturesReader) Load(airport string, year int) (*models.RecordTable, error) {
	path := r.Path(airport, year)
	empty := models.NewRecordTable(path, nil)

	f, err := os.Open(path)
	if err != nil {
		return empty, fmt.Errorf("%w: %w", models.ErrIO, err)
	}
	defer f.Close()

	rows, err := ReadDepartures(f)
	if err != nil {
		return empty, fmt.Errorf("%w: %s: %w", models.ErrIO, path, err)
	}

	t := models.NewRecordTable(path, rows)
	utils.L().Info("loaded %d departures from %s", t.Len(), path)
	return t, nil
}

// ReadDepartures parses CSV from src, dropping the header row.
func ReadDepartures(src io.Reader) ([][]string, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true // stray quotes in free text stay in the field
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if want := len(models.DepartureColumns); len(header) < want {
		utils.L().Warn("departures header has %d columns, expected %d", len(header), want)
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
