package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airport-analyser/models"
	"airport-analyser/services/analysis"
	"airport-analyser/utils"
	"airport-analyser/views"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeLoader struct {
	rows  [][]string
	err   error
	calls []string
}

func (l *fakeLoader) Load(airport string, year int) (*models.RecordTable, error) {
	l.calls = append(l.calls, fmt.Sprintf("%s%d", airport, year))
	if l.err != nil {
		return models.NewRecordTable(utils.SourceFileName(airport, year), nil), l.err
	}
	return models.NewRecordTable(utils.SourceFileName(airport, year), l.rows), nil
}

type savedReport struct {
	airport string
	year    int
	report  models.MetricsReport
}

type fakeSaver struct {
	saved []savedReport
	err   error
}

func (s *fakeSaver) Save(airportName string, year int, report models.MetricsReport) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, savedReport{airportName, year, report})
	return nil
}

type fakeChart struct {
	reqs  []views.ChartRequest
	sizes []int
	err   error
}

func (c *fakeChart) Render(req views.ChartRequest, table *models.RecordTable) error {
	c.reqs = append(c.reqs, req)
	c.sizes = append(c.sizes, table.Len())
	return c.err
}

type harness struct {
	out    *bytes.Buffer
	loader *fakeLoader
	saver  *fakeSaver
	chart  *fakeChart
	sc     *SessionController
}

func newHarness(t *testing.T, input string, rows ...[]string) *harness {
	t.Helper()
	ref, err := utils.LoadReference("")
	require.NoError(t, err)
	h := &harness{
		out:    &bytes.Buffer{},
		loader: &fakeLoader{rows: rows},
		saver:  &fakeSaver{},
		chart:  &fakeChart{},
	}
	h.sc = NewSessionController(SessionDeps{
		In:        strings.NewReader(input),
		Out:       h.out,
		Reference: ref,
		Validator: NewValidator(ref, 2000, 2025),
		Loader:    h.loader,
		Saver:     h.saver,
		Chart:     h.chart,
		Metrics:   analysis.DefaultOptions(),
	})
	return h
}

func departure(code, sched, actual, dest, dist, runway, weather string) []string {
	return []string{"0", code, sched, actual, dest, dist, "-", "-", runway, weather}
}

var sampleRows = [][]string{
	departure("BA101", "0100", "0100", "MAD", "600", "1", "Rain"),
	departure("AF202", "0130", "0145", "CDG", "300", "2", "Sunny"),
	departure("BA303", "0900", "0900", "MAD", "700", "1", "Cloudy"),
}

// ---------------------------------------------------------------------------
// Happy path
// ---------------------------------------------------------------------------

func TestSessionSingleIteration(t *testing.T) {
	h := newHarness(t, "XXX\nLHR\n1999\n2019\nZZ\nBA\nn\n", sampleRows...)

	require.NoError(t, h.sc.Run())
	assert.Equal(t, StateDone, h.sc.state)
	assert.Equal(t, 1, h.sc.Iterations())

	out := h.out.String()
	assert.Contains(t, out, msgUnknownCity)
	assert.Contains(t, out, "Out of range - please enter a value from 2000 to 2025")
	assert.Contains(t, out, msgUnknownAirline)
	assert.Contains(t, out, "File LHR2019.csv selected - Planes departing London Heathrow 2019.")
	assert.Contains(t, out, strings.Repeat("*", bannerWidth))
	assert.Contains(t, out, models.LabelTotal+": 3\n")
	assert.Contains(t, out, models.LabelBritishAirways+": 2\n")
	assert.True(t, strings.HasSuffix(out, "Thank you. End of run\n"))

	assert.Equal(t, []string{"LHR2019"}, h.loader.calls)
	require.Len(t, h.saver.saved, 1)
	assert.Equal(t, "London Heathrow", h.saver.saved[0].airport)
	assert.Equal(t, 2019, h.saver.saved[0].year)
	v, ok := h.saver.saved[0].report.Value(models.LabelDelayed)
	require.True(t, ok)
	assert.Equal(t, "1", v)

	require.Len(t, h.chart.reqs, 1)
	assert.Equal(t, views.ChartRequest{
		AirlineCode: "BA",
		AirlineName: "British Airways",
		AirportName: "London Heathrow",
		Year:        2019,
	}, h.chart.reqs[0])
	assert.Equal(t, []int{3}, h.chart.sizes)
}

func TestSessionRepeatsUntilDeclined(t *testing.T) {
	h := newHarness(t, "lhr\n2019\nba\ny\nath\n2005\naf\nN\n", sampleRows...)

	require.NoError(t, h.sc.Run())
	assert.Equal(t, 2, h.sc.Iterations())
	assert.Equal(t, []string{"LHR2019", "ATH2005"}, h.loader.calls)
	require.Len(t, h.saver.saved, 2)
	assert.Equal(t, "Athens", h.saver.saved[1].airport)
	require.Len(t, h.chart.reqs, 2)
	assert.Equal(t, "AF", h.chart.reqs[1].AirlineCode)
	assert.Equal(t, 1, strings.Count(h.out.String(), "Thank you. End of run"))
}

// ---------------------------------------------------------------------------
// Failure paths
// ---------------------------------------------------------------------------

func TestSessionLoadFailureContinuesWithEmptyTable(t *testing.T) {
	h := newHarness(t, "LHR\n2019\nBA\nn\n")
	h.loader.err = fmt.Errorf("%w: open LHR2019.csv: no such file", models.ErrIO)

	require.NoError(t, h.sc.Run())
	out := h.out.String()
	assert.Contains(t, out, "Failed to load CSV: ")
	assert.Contains(t, out, "File LHR2019.csv selected")
	assert.Contains(t, out, models.LabelTotal+": 0\n")
	assert.Contains(t, out, models.LabelPctDelayed+": 0%\n")
	require.Len(t, h.saver.saved, 1)
	assert.Equal(t, []int{0}, h.chart.sizes)
}

func TestSessionFormatErrorSkipsSave(t *testing.T) {
	h := newHarness(t, "LHR\n2019\nBA\nn\n",
		departure("BA101", "0100", "0100", "MAD", "far", "1", "Rain"),
	)

	require.NoError(t, h.sc.Run())
	assert.Contains(t, h.out.String(), "Could not compute metrics: ")
	assert.Empty(t, h.saver.saved)
	assert.Len(t, h.chart.reqs, 1)
	assert.Equal(t, StateDone, h.sc.state)
}

func TestSessionSaveFailureEndsRun(t *testing.T) {
	h := newHarness(t, "LHR\n2019\nBA\nn\n", sampleRows...)
	h.saver.err = fmt.Errorf("%w: permission denied", models.ErrWrite)

	err := h.sc.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrWrite))
	assert.Equal(t, StateSave, h.sc.state)
	assert.Contains(t, h.out.String(), "Could not save results: ")
	assert.Empty(t, h.chart.reqs)
}

func TestSessionChartFailureIsReported(t *testing.T) {
	h := newHarness(t, "LHR\n2019\nBA\nn\n", sampleRows...)
	h.chart.err = errors.New("no display")

	require.NoError(t, h.sc.Run())
	assert.Contains(t, h.out.String(), "Could not display chart: no display")
	assert.Equal(t, 1, h.sc.Iterations())
}

func TestSessionEndOfInput(t *testing.T) {
	cases := map[string]struct {
		input string
		iters int
	}{
		"empty":          {"", 0},
		"after airport":  {"LHR\n", 0},
		"after airline":  {"LHR\n2019\nBA\n", 0},
		"unterminated n": {"LHR\n2019\nBA\nn", 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, tc.input, sampleRows...)
			require.NoError(t, h.sc.Run())
			assert.Equal(t, StateDone, h.sc.state)
			assert.Equal(t, tc.iters, h.sc.Iterations())
		})
	}
}

func TestSessionStateNames(t *testing.T) {
	assert.Equal(t, "prompt_airport", StatePromptAirport.String())
	assert.Equal(t, "chart", StateChart.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", SessionState(99).String())
}
