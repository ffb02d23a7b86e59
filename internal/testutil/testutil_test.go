package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"testing"
)

func TestInterleavedRows(t *testing.T) {
	rows := InterleavedRows(2, 4)
	want := [][]float64{
		{0, 1, 2, 3},
		{1, 2, 3, 4},
		{10, 11, 12, 13},
		{11, 12, 13, 14},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		for k := range want[i] {
			if rows[i][k] != want[i][k] {
				t.Errorf("rows[%d][%d] = %v, want %v", i, k, rows[i][k], want[i][k])
			}
		}
	}
}

func TestResultsJSON(t *testing.T) {
	data := ResultsJSON(t, UniformExample(1, 2))

	var decoded map[string][]ExampleJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded["examples"]) != 1 {
		t.Fatalf("got %d examples, want 1", len(decoded["examples"]))
	}
	if got := decoded["examples"][0].Prediction[1][1]; got != 2 {
		t.Errorf("prediction[1][1] = %v, want 2", got)
	}
}

func TestGzipAndWriteFile(t *testing.T) {
	root := t.TempDir()
	path := WriteFile(t, root, "log/results.json.gz", Gzip(t, []byte("[]")))

	raw, err := os.ReadFile(path)
	AssertNoError(t, err)
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	AssertNoError(t, err)
	body, err := io.ReadAll(zr)
	AssertNoError(t, err)
	if string(body) != "[]" {
		t.Errorf("round trip = %q, want []", body)
	}
}
