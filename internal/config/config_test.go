package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSplit(t *testing.T) {
	for _, s := range []string{"train", "dev", "test"} {
		got, err := ParseSplit(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "Test", "validation", "tests", " test"} {
		_, err := ParseSplit(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidSplit), "%q: %v", s, err)

		var splitErr *InvalidSplitError
		require.True(t, errors.As(err, &splitErr))
		assert.Equal(t, s, splitErr.Value)
		assert.Contains(t, err.Error(), "train, dev, or test")
	}
}

func TestResultPath(t *testing.T) {
	tests := []struct {
		split Split
		want  string
	}{
		{Test, "log/test_results_wi_testset_3.json"},
		{Train, "save/final_train_results_wi_testset_3.json"},
		{Dev, "save/final_dev_results_wi_testset_3.json"},
	}
	for _, tt := range tests {
		got, err := ResultPath(tt.split, "3")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ResultPath(Split("holdout"), "3")
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestResolveResultPath(t *testing.T) {
	m := fsutil.NewMemoryFileSystem()

	// Neither file present: the plain path is returned for the loader to report.
	got, err := ResolveResultPath(m, "exp", Test, "eth")
	require.NoError(t, err)
	assert.Equal(t, "exp/log/test_results_wi_testset_eth.json", got)

	m.WriteFile("exp/log/test_results_wi_testset_eth.json.gz", []byte{0x1f, 0x8b})
	got, err = ResolveResultPath(m, "exp", Test, "eth")
	require.NoError(t, err)
	assert.Equal(t, "exp/log/test_results_wi_testset_eth.json.gz", got)

	m.WriteFile("exp/log/test_results_wi_testset_eth.json", []byte("[]"))
	got, err = ResolveResultPath(m, "exp", Test, "eth")
	require.NoError(t, err)
	assert.Equal(t, "exp/log/test_results_wi_testset_eth.json", got)
}

func TestLoadRunConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    TestsetID
		wantErr string
	}{
		{name: "numeric testset", body: `{"testset": 3, "learning_rate": 0.001}`, want: "3"},
		{name: "string testset", body: `{"testset": "hotel"}`, want: "hotel"},
		{name: "missing testset", body: `{"epochs": 10}`, wantErr: "no testset"},
		{name: "null testset", body: `{"testset": null}`, wantErr: "no testset"},
		{name: "boolean testset", body: `{"testset": true}`, wantErr: "string or number"},
		{name: "path in testset", body: `{"testset": "../x"}`, wantErr: "path separators"},
		{name: "malformed", body: `{"testset": `, wantErr: "parse config JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fsutil.NewMemoryFileSystem()
			m.WriteFile(DefaultRunConfigPath, []byte(tt.body))

			cfg, err := LoadRunConfig(m, DefaultRunConfigPath)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Testset)
		})
	}
}

func TestLoadRunConfig_FileChecks(t *testing.T) {
	m := fsutil.NewMemoryFileSystem()

	_, err := LoadRunConfig(m, "save/train_config.pkl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json extension")

	_, err = LoadRunConfig(m, DefaultRunConfigPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat config file")

	big := `{"testset": 1, "pad": "` + strings.Repeat("x", maxConfigSize) + `"}`
	m.WriteFile(DefaultRunConfigPath, []byte(big))
	_, err = LoadRunConfig(m, DefaultRunConfigPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
