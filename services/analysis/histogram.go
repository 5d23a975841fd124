package analysis

import (
	"strconv"

	"airport-analyser/models"
)

// HourBins counts the departures of one airline per scheduled hour over a
// window of hours starting at 00. Records whose hour prefix is not a number,
// or falls outside the window, are left out without error.
func HourBins(table *models.RecordTable, airline string, windowHours int) []int {
	if windowHours <= 0 {
		windowHours = 12
	}
	bins := make([]int, windowHours)
	if table == nil {
		return bins
	}
	for _, r := range table.Records {
		ok, err := r.OperatedBy(airline)
		if err != nil || !ok {
			continue
		}
		h, err := r.ScheduledHour()
		if err != nil || !allDigits(h) {
			continue
		}
		hour, err := strconv.Atoi(h)
		if err != nil || hour >= windowHours {
			continue
		}
		bins[hour]++
	}
	return bins
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
