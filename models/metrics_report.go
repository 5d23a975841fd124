package models

import "strconv"

// Report labels, in the order the metrics are computed and written.
const (
	LabelTotal           = "Total number of departure flights recorded in the 12-hour period"
	LabelRunway1         = "Total number of flights taking off from runway 1"
	LabelOver500         = "Total number of departures of flights that are over 500 miles"
	LabelBritishAirways  = "Total number of departure flights by British Airways aircraft"
	LabelRain            = "Total number of flights departing in rain"
	LabelAirFrance       = "Total number of departure flights by Air France aircraft"
	LabelDelayed         = "Total number of flights with delayed departures"
	LabelAvgPerHour      = "Average number of departures per hour"
	LabelPctAirFrance    = "Percentage of total departures that are Air France aircraft"
	LabelPctDelayed      = "Percentage of flights with delayed departures"
	LabelRainHours       = "Total number of hours of rain in the twelve hours"
	LabelTopDestinations = "Most common destination(s)"
)

// Metrics is the typed result of one metrics computation.
type Metrics struct {
	Total                  int
	Runway1                int
	Over500                int
	BritishAirways         int
	Rain                   int
	AirFrance              int
	Delayed                int
	AvgPerHour             float64
	PctAirFrance           string // e.g. "33.33%"
	PctDelayed             string
	RainHours              int
	MostCommonDestinations string
}

// MetricEntry is one labelled line of a report.
type MetricEntry struct {
	Label string
	Value string
}

// MetricsReport is the ordered, rendered form of Metrics.
type MetricsReport []MetricEntry

// Report renders m in computation order.
func (m *Metrics) Report() MetricsReport {
	return MetricsReport{
		{LabelTotal, itoa(m.Total)},
		{LabelRunway1, itoa(m.Runway1)},
		{LabelOver500, itoa(m.Over500)},
		{LabelBritishAirways, itoa(m.BritishAirways)},
		{LabelRain, itoa(m.Rain)},
		{LabelAirFrance, itoa(m.AirFrance)},
		{LabelDelayed, itoa(m.Delayed)},
		{LabelAvgPerHour, ftoa(m.AvgPerHour)},
		{LabelPctAirFrance, m.PctAirFrance},
		{LabelPctDelayed, m.PctDelayed},
		{LabelRainHours, itoa(m.RainHours)},
		{LabelTopDestinations, m.MostCommonDestinations},
	}
}

// Value returns the rendered value for label.
func (r MetricsReport) Value(label string) (string, bool) {
	for _, e := range r {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// Labels returns the labels in report order.
func (r MetricsReport) Labels() []string {
	out := make([]string, len(r))
	for i, e := range r {
		out[i] = e.Label
	}
	return out
}

// FormatPercent renders an already-rounded percentage without trailing
// zeros ("33.33%", "50%", "0%"). An undefined percentage (no records)
// renders as "0%".
func FormatPercent(v float64, defined bool) string {
	if !defined {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ReportSummary is one airport/year report flattened for the summary CSV.
type ReportSummary struct {
	Airport string
	Year    int
	Report  MetricsReport
}

// CSVHeader returns airport, year, then one column per metric label.
func (s *ReportSummary) CSVHeader() []string {
	h := append([]string{}, summaryLeadColumns...)
	return append(h, s.Report.Labels()...)
}

// CSVRow returns the summary as a CSV row matching CSVHeader.
func (s *ReportSummary) CSVRow() []string {
	row := []string{s.Airport, itoa(s.Year)}
	for _, e := range s.Report {
		row = append(row, e.Value)
	}
	return row
}
