// Package analysis computes the departure statistics and the hourly
// histogram from a loaded RecordTable. Everything here is a pure function of
// its inputs.
package analysis

import (
	"strconv"
	"strings"

	"airport-analyser/models"
	"airport-analyser/utils"
)

// DestinationNamer maps a destination code to its display name.
// *models.Reference satisfies it.
type DestinationNamer interface {
	DestinationName(code string) string
}

// Options tune the metrics computation.
type Options struct {
	Policy      utils.FieldPolicy
	WindowHours int // reporting window the hourly average is taken over
}

// DefaultOptions is strict parsing over the 12-hour window.
func DefaultOptions() Options {
	return Options{Policy: utils.PolicyStrict, WindowHours: 12}
}

type engine struct {
	lenient bool
	skipped int
}

// fail applies the field policy to a record-level error. A nil return means
// "skip this record for the current metric and keep going".
func (e *engine) fail(metric string, err error) error {
	if !e.lenient {
		return err
	}
	e.skipped++
	utils.L().Warn("%s: skipping record: %v", metric, err)
	return nil
}

// ComputeMetrics derives the report figures from table. names may be nil,
// in which case destination codes are reported as-is.
//
// Under the strict policy the first unusable field aborts the computation
// with a *models.FormatError.
func ComputeMetrics(table *models.RecordTable, names DestinationNamer, opts Options) (*models.Metrics, error) {
	if opts.WindowHours <= 0 {
		opts.WindowHours = 12
	}
	e := &engine{lenient: opts.Policy == utils.PolicyLenient}
	var recs []models.FlightRecord
	if table != nil {
		recs = table.Records
	}

	m := &models.Metrics{Total: len(recs)}

	for _, r := range recs {
		v, err := r.Field(models.ColRunway)
		if err != nil {
			if err = e.fail("runway1", err); err != nil {
				return nil, err
			}
			continue
		}
		if strings.TrimSpace(v) == "1" {
			m.Runway1++
		}
	}

	for _, r := range recs {
		d, err := r.Distance()
		if err != nil {
			if err = e.fail("over500", err); err != nil {
				return nil, err
			}
			continue
		}
		if d > 500 {
			m.Over500++
		}
	}

	var err error
	if m.BritishAirways, err = e.countAirline(recs, "BA"); err != nil {
		return nil, err
	}

	for _, r := range recs {
		rain, err := r.HasRain()
		if err != nil {
			if err = e.fail("rain", err); err != nil {
				return nil, err
			}
			continue
		}
		if rain {
			m.Rain++
		}
	}

	if m.AirFrance, err = e.countAirline(recs, "AF"); err != nil {
		return nil, err
	}

	for _, r := range recs {
		sched, err := r.Field(models.ColScheduled)
		if err == nil {
			var actual string
			actual, err = r.Field(models.ColActual)
			if err == nil && sched != actual {
				m.Delayed++
			}
		}
		if err != nil {
			if err = e.fail("delayed", err); err != nil {
				return nil, err
			}
		}
	}

	m.AvgPerHour = round2(float64(m.Total) / float64(opts.WindowHours))
	m.PctAirFrance = percentOf(m.AirFrance, m.Total)
	m.PctDelayed = percentOf(m.Delayed, m.Total)

	if m.RainHours, err = e.rainHours(recs); err != nil {
		return nil, err
	}

	top, err := e.topDestinations(recs)
	if err != nil {
		return nil, err
	}
	display := make([]string, len(top))
	for i, code := range top {
		display[i] = code
		if names != nil {
			display[i] = names.DestinationName(code)
		}
	}
	m.MostCommonDestinations = strings.Join(display, ", ")

	if e.skipped > 0 {
		utils.L().Warn("metrics computed with %d skipped field(s)", e.skipped)
	}
	return m, nil
}

func (e *engine) countAirline(recs []models.FlightRecord, airline string) (int, error) {
	n := 0
	for _, r := range recs {
		ok, err := r.OperatedBy(airline)
		if err != nil {
			if err = e.fail(airline+" count", err); err != nil {
				return 0, err
			}
			continue
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// rainHours counts distinct scheduled-hour prefixes among rain records.
func (e *engine) rainHours(recs []models.FlightRecord) (int, error) {
	hours := make(map[string]struct{})
	for _, r := range recs {
		rain, err := r.HasRain()
		if err == nil && rain {
			var h string
			h, err = r.ScheduledHour()
			if err == nil {
				hours[h] = struct{}{}
			}
		}
		if err != nil {
			if err = e.fail("rain hours", err); err != nil {
				return 0, err
			}
		}
	}
	return len(hours), nil
}

// topDestinations returns every destination code sharing the highest
// frequency, in the order each was first seen.
func (e *engine) topDestinations(recs []models.FlightRecord) ([]string, error) {
	counts := make(map[string]int)
	var order []string
	for _, r := range recs {
		d, err := r.Field(models.ColDestination)
		if err != nil {
			if err = e.fail("destinations", err); err != nil {
				return nil, err
			}
			continue
		}
		if _, seen := counts[d]; !seen {
			order = append(order, d)
		}
		counts[d]++
	}

	best := 0
	for _, c := range counts {
		best = max(best, c)
	}
	var top []string
	for _, d := range order {
		if counts[d] == best {
			top = append(top, d)
		}
	}
	return top, nil
}

// round2 rounds to two decimals, resolving exact ties half-to-even on the
// binary value ("3.125" -> 3.12).
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func percentOf(n, total int) string {
	if total == 0 {
		return models.FormatPercent(0, false)
	}
	return models.FormatPercent(round2(float64(n)/float64(total)*100), true)
}
