package models

import "sort"

// Reference holds the fixed lookup tables: valid departure airports,
// valid airlines and long names for common destinations. It is built once
// at startup and never modified.
type Reference struct {
	airports     map[string]string
	airlines     map[string]string
	destinations map[string]string
}

// NewReference copies the given maps so later changes by the caller do not
// leak in.
func NewReference(airports, airlines, destinations map[string]string) *Reference {
	return &Reference{
		airports:     copyMap(airports),
		airlines:     copyMap(airlines),
		destinations: copyMap(destinations),
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AirportName returns the city name for a departure airport code.
func (r *Reference) AirportName(code string) (string, bool) {
	n, ok := r.airports[code]
	return n, ok
}

// AirlineName returns the full name for a two-character airline code.
func (r *Reference) AirlineName(code string) (string, bool) {
	n, ok := r.airlines[code]
	return n, ok
}

// DestinationName returns the long name for a destination code, or the
// code itself when no long name is known.
func (r *Reference) DestinationName(code string) string {
	if n, ok := r.destinations[code]; ok {
		return n
	}
	return code
}

// AirportCodes returns the known airport codes, sorted.
func (r *Reference) AirportCodes() []string { return sortedKeys(r.airports) }

// AirlineCodes returns the known airline codes, sorted.
func (r *Reference) AirlineCodes() []string { return sortedKeys(r.airlines) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
