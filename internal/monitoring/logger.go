// Package monitoring holds the diagnostic logger shared by the plotting tools.
package monitoring

import (
	"io"
	"log"
)

// Logf is the package-level diagnostic logger. It is muted by default so the
// console only carries the plot trace; Enable or SetLogger turn it on.
var Logf func(format string, v ...interface{}) = discard

func discard(string, ...interface{}) {}

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = discard
		return
	}
	Logf = f
}

// Enable routes Logf through a standard logger writing to w.
func Enable(w io.Writer, prefix string) {
	l := log.New(w, prefix, log.LstdFlags)
	Logf = l.Printf
}
