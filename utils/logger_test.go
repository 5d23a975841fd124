package utils

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{
		"debug":   DEBUG,
		" INFO ":  INFO,
		"warning": WARN,
		"warn":    WARN,
		"error":   ERROR,
		"fatal":   FATAL,
		"bogus":   INFO,
	} {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerLevelsAndPercent(t *testing.T) {
	var buf bytes.Buffer
	l := L()
	l.SetOutput(&buf)
	l.SetLevel(WARN)
	defer l.SetLevel(WARN)

	l.Info("hidden")
	l.Warn("load 100% done")
	l.Error("code %s", "XXX")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "load 100% done")
	assert.NotContains(t, out, "MISSING")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "code XXX")
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "LHR2019.csv", SourceFileName("LHR", 2019))
	assert.Regexp(t, regexp.MustCompile(`^BA_x_\d{8}_\d{6}\.png$`), ArtifactName("BA_x", "png"))
	ts := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	assert.Equal(t, "20240309_070501", Stamp(ts))
	assert.False(t, strings.Contains(Stamp(ts), " "))
}
