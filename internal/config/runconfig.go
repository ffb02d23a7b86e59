package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/trajplot/internal/fsutil"
)

// DefaultRunConfigPath is where training saves its run configuration,
// relative to the experiment root.
const DefaultRunConfigPath = "save/train_config.json"

// maxConfigSize bounds the run configuration file (1MB).
const maxConfigSize = 1 * 1024 * 1024

// ErrMissingTestset is returned when the run configuration has no testset.
var ErrMissingTestset = errors.New("run configuration has no testset")

// TestsetID identifies the held-out test set of a training run. Training
// scripts write it either as a string or as a number; both decode to the
// same textual form.
type TestsetID string

// UnmarshalJSON accepts a JSON string or number.
func (id *TestsetID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TestsetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("testset must be a string or number: %w", err)
	}
	*id = TestsetID(n.String())
	return nil
}

// RunConfig is the part of a saved training configuration this tool reads.
// Unknown fields are ignored.
type RunConfig struct {
	Testset TestsetID `json:"testset"`
}

// Validate checks that the configuration carries a usable testset.
func (c *RunConfig) Validate() error {
	if strings.TrimSpace(string(c.Testset)) == "" {
		return ErrMissingTestset
	}
	if strings.ContainsAny(string(c.Testset), `/\`) {
		return fmt.Errorf("testset %q must not contain path separators", c.Testset)
	}
	return nil
}

// LoadRunConfig reads and validates a run configuration from a JSON file.
func LoadRunConfig(fsys fsutil.FileSystem, path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
