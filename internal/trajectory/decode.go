package trajectory

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/banshee-data/trajplot/internal/monitoring"
	"gonum.org/v1/gonum/mat"
)

// rawExample is the on-disk form of an Example. It decodes from either
// {"input": [...], "target": [...], "prediction": [...]} or a three element
// array [input, target, prediction], each matrix a list of rows.
type rawExample struct {
	Input      [][]float64 `json:"input"`
	Target     [][]float64 `json:"target"`
	Prediction [][]float64 `json:"prediction"`
}

func (r *rawExample) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var triple [][][]float64
		if err := json.Unmarshal(data, &triple); err != nil {
			return err
		}
		if len(triple) != 3 {
			return fmt.Errorf("example tuple has %d matrices, want 3", len(triple))
		}
		r.Input, r.Target, r.Prediction = triple[0], triple[1], triple[2]
		return nil
	}
	type plain rawExample
	return json.Unmarshal(data, (*plain)(r))
}

type rawCollection struct {
	Examples []rawExample `json:"examples"`
}

// Decode reads a result collection. The top level is either an object with
// an "examples" array or the bare array itself.
func Decode(r io.Reader) (*Collection, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	var raws []rawExample
	dec := json.NewDecoder(br)
	if first == '[' {
		err = dec.Decode(&raws)
	} else {
		var rc rawCollection
		err = dec.Decode(&rc)
		raws = rc.Examples
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse results JSON: %w", err)
	}

	examples := make([]Example, len(raws))
	for i, raw := range raws {
		ex, err := raw.toExample()
		if err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
		examples[i] = ex
	}
	return NewCollection(examples...), nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func (r rawExample) toExample() (Example, error) {
	in, err := toDense("input", r.Input)
	if err != nil {
		return Example{}, err
	}
	tgt, err := toDense("target", r.Target)
	if err != nil {
		return Example{}, err
	}
	pred, err := toDense("prediction", r.Prediction)
	if err != nil {
		return Example{}, err
	}
	return Example{Input: in, Target: tgt, Prediction: pred}, nil
}

func toDense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s matrix is empty", name)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s matrix row %d has %d columns, want %d", name, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Load opens path on fsys and decodes it, gunzipping files ending in .gz.
// The file is closed before Load returns.
func Load(fsys fsutil.FileSystem, path string) (*Collection, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip results %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	c, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	monitoring.Logf("loaded %d examples from %s", c.Len(), path)
	return c, nil
}
