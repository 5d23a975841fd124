package models

import (
	"errors"
	"strconv"
	"strings"
)

// Column positions in a departures file. Columns 6 and 7 are carried but
// nothing reads them.
const (
	ColFlightID    = 0
	ColFlightCode  = 1 // airline code (2 chars) + flight number
	ColScheduled   = 2 // HHMM
	ColActual      = 3 // HHMM
	ColDestination = 4
	ColDistance    = 5 // miles
	ColRunway      = 8
	ColWeather     = 9
)

var errMissingColumn = errors.New("column missing")

// FlightRecord is one departure row, kept as the raw positional strings of
// the source file. Nothing is validated until a field is used.
type FlightRecord struct {
	Row    int // 1-based data row number in the source file
	Fields []string
}

// Field returns the raw value at col, or a FormatError when the row is too
// short to have it.
func (r FlightRecord) Field(col int) (string, error) {
	if col < 0 || col >= len(r.Fields) {
		return "", &FormatError{Row: r.Row, Column: col, Err: errMissingColumn}
	}
	return r.Fields[col], nil
}

// Distance parses the distance column as an integer number of miles.
func (r FlightRecord) Distance() (int, error) {
	v, err := r.Field(ColDistance)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &FormatError{Row: r.Row, Column: ColDistance, Value: v, Err: errors.Unwrap(err)}
	}
	return n, nil
}

// HasRain reports whether the weather column mentions rain in any case.
func (r FlightRecord) HasRain() (bool, error) {
	v, err := r.Field(ColWeather)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(v), "rain"), nil
}

// OperatedBy reports whether the flight code starts with the given airline
// code.
func (r FlightRecord) OperatedBy(airline string) (bool, error) {
	v, err := r.Field(ColFlightCode)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(v, airline), nil
}

// ScheduledHour returns the first two characters of the scheduled time (or
// the whole value when it is shorter).
func (r FlightRecord) ScheduledHour() (string, error) {
	v, err := r.Field(ColScheduled)
	if err != nil {
		return "", err
	}
	if len(v) > 2 {
		v = v[:2]
	}
	return v, nil
}

// RecordTable is the set of departures loaded from one source file.
// Every load produces a fresh table; tables are never merged.
type RecordTable struct {
	Source  string
	Records []FlightRecord
}

// NewRecordTable numbers rows in file order.
func NewRecordTable(source string, rows [][]string) *RecordTable {
	t := &RecordTable{Source: source, Records: make([]FlightRecord, 0, len(rows))}
	for i, row := range rows {
		t.Records = append(t.Records, FlightRecord{Row: i + 1, Fields: row})
	}
	return t
}

// Len returns the number of records.
func (t *RecordTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}
