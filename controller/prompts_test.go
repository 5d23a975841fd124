package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-analyser/models"
	"airport-analyser/utils"
)

func testValidator(t *testing.T) (*Validator, *models.Reference) {
	t.Helper()
	ref, err := utils.LoadReference("")
	require.NoError(t, err)
	return NewValidator(ref, 2000, 2025), ref
}

func reason(t *testing.T, err error) string {
	t.Helper()
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
	return ve.Reason
}

func TestValidateAirport(t *testing.T) {
	v, ref := testValidator(t)

	_, err := v.Airport("LH")
	assert.Equal(t, msgCodeLength, reason(t, err))
	_, err = v.Airport("LHRX")
	assert.Equal(t, msgCodeLength, reason(t, err))
	_, err = v.Airport("XXX")
	assert.Equal(t, msgUnknownCity, reason(t, err))

	code, err := v.Airport("  lhr ")
	require.NoError(t, err)
	assert.Equal(t, "LHR", code)

	for _, c := range ref.AirportCodes() {
		got, err := v.Airport(c)
		assert.NoError(t, err, c)
		assert.Equal(t, c, got)
	}
}

func TestValidateYear(t *testing.T) {
	v, _ := testValidator(t)

	for _, in := range []string{"99", "20100", "20a0", "", "+201"} {
		_, err := v.Year(in)
		assert.Equal(t, msgYearFormat, reason(t, err), in)
	}
	for _, in := range []string{"1999", "2026"} {
		_, err := v.Year(in)
		assert.Equal(t, "Out of range - please enter a value from 2000 to 2025", reason(t, err), in)
	}
	for in, want := range map[string]int{"2010": 2010, "2000": 2000, " 2025\t": 2025} {
		got, err := v.Year(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
}

func TestValidateAirline(t *testing.T) {
	v, ref := testValidator(t)

	code, err := v.Airline(" ba")
	require.NoError(t, err)
	assert.Equal(t, "BA", code)

	_, err = v.Airline("ZZ")
	assert.Equal(t, msgUnknownAirline, reason(t, err))
	assert.ErrorIs(t, err, models.ErrValidation)

	for _, c := range ref.AirlineCodes() {
		_, err := v.Airline(c)
		assert.NoError(t, err, c)
	}
}

func TestWantsAnother(t *testing.T) {
	assert.True(t, WantsAnother("y"))
	assert.True(t, WantsAnother(" Y\r"))
	assert.False(t, WantsAnother("yes"))
	assert.False(t, WantsAnother("n"))
	assert.False(t, WantsAnother(""))
}
