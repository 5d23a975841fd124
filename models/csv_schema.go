package models

import "strconv"

// DepartureColumns is the column layout of a departures file, indexed by
// the Col* positions. Unused columns keep a placeholder name.
var DepartureColumns = []string{
	ColFlightID:    "flight_id",
	ColFlightCode:  "flight_code",
	ColScheduled:   "scheduled",
	ColActual:      "actual",
	ColDestination: "destination",
	ColDistance:    "distance",
	6:              "col_6",
	7:              "col_7",
	ColRunway:      "runway",
	ColWeather:     "weather",
}

// summaryLeadColumns open every summary CSV row, before the metric labels.
var summaryLeadColumns = []string{"airport", "year"}

// ColumnName returns the schema name of a column position.
func ColumnName(col int) string {
	if col >= 0 && col < len(DepartureColumns) {
		return DepartureColumns[col]
	}
	return "col_" + strconv.Itoa(col)
}
