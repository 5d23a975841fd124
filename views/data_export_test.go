package views

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-analyser/models"
)

func TestCSVWriterHeaderOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	for i := 0; i < 2; i++ {
		w, err := NewCSVWriter(path, 0, []string{"a", "b"})
		require.NoError(t, err)
		require.NoError(t, w.WriteRow([]string{"1", "2"}))
		assert.Equal(t, uint64(1), w.Rows())
		require.NoError(t, w.Close())
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}, {"1", "2"}}, rows)
}

func TestCSVReportLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	l := NewCSVReportLog(path)
	require.NoError(t, l.Append("Paris Orly", 2015, sampleReport()))
	require.NoError(t, l.Append("Lyon", 2016, sampleReport()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"airport", "year"}, rows[0][:2])
	assert.Equal(t, models.LabelTotal, rows[0][2])
	assert.Equal(t, []string{"Paris Orly", "2015", "3"}, rows[1][:3])
	assert.Equal(t, "Lyon", rows[2][0])
}

func TestCSVReportLogWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "summary.csv")
	err := NewCSVReportLog(path).Append("Lyon", 2016, sampleReport())
	assert.True(t, errors.Is(err, models.ErrWrite))
}
