package utils

import (
	"fmt"
	"time"
)

// Stamp is the compact local-time suffix used in generated file names.
func Stamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// ArtifactName returns a unique file name for a generated chart or report:
//
//	<prefix>_YYYYMMDD_HHMMSS.<ext>
func ArtifactName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, Stamp(time.Now()), ext)
}

// SourceFileName is the conventional name of a departures file,
// e.g. LHR2019.csv.
func SourceFileName(airport string, year int) string {
	return fmt.Sprintf("%s%d.csv", airport, year)
}
