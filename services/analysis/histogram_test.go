package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourBins(t *testing.T) {
	tbl := table(
		row("BA100", "0830", "0830", "MAD", "1", "1", ""),
		row("BA101", "0815", "0820", "MAD", "1", "1", ""),
		row("BA102", "1155", "1155", "MAD", "1", "1", ""),
		row("BA103", "0005", "0005", "MAD", "1", "1", ""),
		row("AF200", "0830", "0830", "MAD", "1", "1", ""),
		row("BA104", "xx30", "xx30", "MAD", "1", "1", ""),
		row("BA105", "1300", "1300", "MAD", "1", "1", ""),
		[]string{"0", "BA106"},
	)

	bins := HourBins(tbl, "BA", 12)
	require.Len(t, bins, 12)
	assert.Equal(t, 2, bins[8])
	assert.Equal(t, 1, bins[11])
	assert.Equal(t, 1, bins[0])

	total := 0
	for _, c := range bins {
		total += c
	}
	assert.Equal(t, 4, total)

	af := HourBins(tbl, "AF", 12)
	assert.Equal(t, 1, af[8])
}

func TestHourBinsEmpty(t *testing.T) {
	assert.Equal(t, make([]int, 12), HourBins(nil, "BA", 12))
	assert.Equal(t, make([]int, 12), HourBins(table(), "BA", 0))
}

func TestAllDigits(t *testing.T) {
	assert.True(t, allDigits("08"))
	assert.False(t, allDigits(""))
	assert.False(t, allDigits("8 "))
	assert.False(t, allDigits("-1"))
}
