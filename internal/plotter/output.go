package plotter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/banshee-data/trajplot/internal/security"
)

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// OutputName is the base file name for the chart of one example.
func OutputName(split string, index int) string {
	return security.SanitizeFilename(fmt.Sprintf("%s_example%d", split, index))
}

// MakeOutputDir returns a timestamped directory for the chart files:
// <baseDir>/plots/<split>_example<N>/<timestamp>.
func MakeOutputDir(baseDir, split string, index int, now time.Time) string {
	return filepath.Join(baseDir, "plots", OutputName(split, index), FormatTimestamp(now))
}
