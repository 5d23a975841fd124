package controller

import (
	"strconv"
	"strings"

	"airport-analyser/models"
)

// Console messages for rejected answers.
const (
	msgCodeLength     = "Wrong code length - please enter a three-letter city code"
	msgUnknownCity    = "Unavailable city code - please enter a valid city code"
	msgYearFormat     = "Wrong data type - please enter a four-digit year value"
	msgUnknownAirline = "Unavailable Airline code please try again:"
)

// Validator checks console answers against the reference data.
type Validator struct {
	ref     *models.Reference
	minYear int
	maxYear int
}

// NewValidator accepts years in [minYear, maxYear].
func NewValidator(ref *models.Reference, minYear, maxYear int) *Validator {
	return &Validator{ref: ref, minYear: minYear, maxYear: maxYear}
}

// Airport normalises and checks a departure airport code.
func (v *Validator) Airport(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if len(code) != 3 {
		return "", &models.ValidationError{Input: input, Reason: msgCodeLength}
	}
	if _, ok := v.ref.AirportName(code); !ok {
		return "", &models.ValidationError{Input: input, Reason: msgUnknownCity}
	}
	return code, nil
}

// Year checks for four digits within the accepted range.
func (v *Validator) Year(input string) (int, error) {
	s := strings.TrimSpace(input)
	if len(s) != 4 || !isDigits(s) {
		return 0, &models.ValidationError{Input: input, Reason: msgYearFormat}
	}
	y, _ := strconv.Atoi(s)
	if y < v.minYear || y > v.maxYear {
		return 0, &models.ValidationError{
			Input:  input,
			Reason: "Out of range - please enter a value from " + strconv.Itoa(v.minYear) + " to " + strconv.Itoa(v.maxYear),
		}
	}
	return y, nil
}

// Airline normalises and checks an airline code.
func (v *Validator) Airline(input string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(input))
	if _, ok := v.ref.AirlineName(code); !ok {
		return "", &models.ValidationError{Input: input, Reason: msgUnknownAirline}
	}
	return code, nil
}

// WantsAnother is true only for a "y" answer, in any case.
func WantsAnother(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == "y"
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
