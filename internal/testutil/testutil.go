// Package testutil provides shared fixtures for trajectory plotting tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// InterleavedRows builds a (2p, t) matrix where row 2i+c (c=0 for x, 1 for
// y) holds [10i+c, 10i+c+1, ..., 10i+c+t-1].
func InterleavedRows(p, t int) [][]float64 {
	rows := make([][]float64, 2*p)
	for i := 0; i < p; i++ {
		for c := 0; c < 2; c++ {
			row := make([]float64, t)
			for k := range row {
				row[k] = float64(i*10 + c + k)
			}
			rows[2*i+c] = row
		}
	}
	return rows
}

// ExampleJSON is the on-disk form of one example.
type ExampleJSON struct {
	Input      [][]float64 `json:"input"`
	Target     [][]float64 `json:"target"`
	Prediction [][]float64 `json:"prediction"`
}

// UniformExample uses the same interleaved matrix for all three roles.
func UniformExample(p, t int) ExampleJSON {
	return ExampleJSON{
		Input:      InterleavedRows(p, t),
		Target:     InterleavedRows(p, t),
		Prediction: InterleavedRows(p, t),
	}
}

// ResultsJSON encodes examples as a result file body.
func ResultsJSON(t testing.TB, examples ...ExampleJSON) []byte {
	t.Helper()
	data, err := json.Marshal(map[string][]ExampleJSON{"examples": examples})
	if err != nil {
		t.Fatalf("marshal results: %v", err)
	}
	return data
}

// Gzip compresses data.
func Gzip(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data under root, creating parent directories.
func WriteFile(t testing.TB, root, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
