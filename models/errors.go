package models

import (
	"errors"
	"fmt"
)

// Error classes surfaced by the analyser. Callers test with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrIO         = errors.New("source unreadable")
	ErrFormat     = errors.New("malformed field")
	ErrWrite      = errors.New("report not written")
)

// ValidationError is a rejected console answer. Reason is the message shown
// to the user before re-prompting.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FormatError pinpoints a record field that could not be used.
// Row is 1-based and counts data rows only (the header is not row 1).
type FormatError struct {
	Row    int
	Column int
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("row %d: column %d (%s) value %q", e.Row, e.Column, ColumnName(e.Column), e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}
