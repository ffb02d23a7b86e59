package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/banshee-data/trajplot/internal/testutil"
	"github.com/banshee-data/trajplot/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = timeutil.NewMockClock(time.Date(2026, time.January, 7, 17, 31, 29, 0, time.UTC))

// newExperiment lays out save/train_config.json and a three example result
// file for each split under a temp root.
func newExperiment(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteFile(t, root, "save/train_config.json", []byte(`{"testset": 3, "batch_size": 8}`))

	body := testutil.ResultsJSON(t,
		testutil.UniformExample(2, 4),
		testutil.UniformExample(1, 4),
		testutil.UniformExample(3, 2),
	)
	testutil.WriteFile(t, root, "log/test_results_wi_testset_3.json", body)
	testutil.WriteFile(t, root, "save/final_train_results_wi_testset_3.json", body)
	testutil.WriteFile(t, root, "save/final_dev_results_wi_testset_3.json.gz", testutil.Gzip(t, body))
	return root
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, fsutil.OSFileSystem{}, &stdout, &stderr, fixedClock)
	return code, stdout.String(), stderr.String()
}

func TestFlagDefaults(t *testing.T) {
	fs, o := newFlagSet(&bytes.Buffer{})
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 0, o.exampleNum)
	assert.Equal(t, 0.36883, o.xScale)
	assert.Equal(t, 0.459005, o.yScale)
	assert.Equal(t, "test", o.split)
	assert.Equal(t, ".", o.root)
	assert.Equal(t, "save/train_config.json", o.configPath)
	assert.Equal(t, "png", o.format)
	assert.True(t, o.html)
	assert.True(t, o.open)
	assert.False(t, o.noRender)
}

func TestRun_TraceOnly(t *testing.T) {
	root := newExperiment(t)

	code, stdout, stderr := runCLI(t, "--root", root, "--no-render",
		"--x_scaling_factor", "1", "--y_scaling_factor", "1")
	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "For test set: 3,", lines[0])
	assert.Equal(t, "Number of examples in test set is 3", lines[1])
	assert.Equal(t, "pred:", lines[2])
	assert.Equal(t, "[0 1 2 3]", lines[3])
	assert.Contains(t, stdout, "target:\n[10 11 12 13]\n[11 12 13 14]\n")
	assert.Equal(t, 2, strings.Count(stdout, "pred:"))
}

func TestRun_Splits(t *testing.T) {
	root := newExperiment(t)

	code, stdout, stderr := runCLI(t, "--root", root, "--no-render", "--train_or_dev_or_test", "train", "--example_num", "2")
	require.Equal(t, exitOK, code, stderr)
	assert.NotContains(t, stdout, "For test set")
	assert.Contains(t, stdout, "Number of examples in train set is 3")
	assert.Equal(t, 3, strings.Count(stdout, "pred:"))

	// Only the gzipped dev results exist.
	code, stdout, stderr = runCLI(t, "--root", root, "--no-render", "--train_or_dev_or_test", "dev", "--example_num", "1")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Number of examples in dev set is 3")
	assert.Equal(t, 1, strings.Count(stdout, "pred:"))
}

func TestRun_InvalidSplit(t *testing.T) {
	root := newExperiment(t)
	for _, split := range []string{"validation", "TEST", ""} {
		code, stdout, stderr := runCLI(t, "--root", root, "--no-render", "--train_or_dev_or_test", split)
		assert.Equal(t, exitUsage, code, split)
		assert.Contains(t, stderr, "train, dev, or test", split)
		assert.Empty(t, stdout, split)
	}
}

func TestRun_IndexOutOfRange(t *testing.T) {
	root := newExperiment(t)

	code, stdout, stderr := runCLI(t, "--root", root, "--no-render", "--example_num", "5")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "Number of examples in test set is 3")
	assert.NotContains(t, stdout, "pred:")
	assert.Contains(t, stderr, "test set does not contain example 5")

	code, _, stderr = runCLI(t, "--root", root, "--no-render", "--example_num", "-1", "--train_or_dev_or_test", "dev")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "dev set does not contain example -1")
}

func TestRun_LoadFailures(t *testing.T) {
	empty := t.TempDir()
	code, _, stderr := runCLI(t, "--root", empty, "--no-render")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "failed to stat config file")

	root := newExperiment(t)
	require.NoError(t, os.Remove(filepath.Join(root, "log/test_results_wi_testset_3.json")))
	code, _, stderr = runCLI(t, "--root", root, "--no-render")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "failed to open results")
}

func TestRun_ExplicitResults(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "results.json", testutil.ResultsJSON(t, testutil.UniformExample(1, 2)))

	// No run configuration is needed when the file is given explicitly.
	code, stdout, stderr := runCLI(t, "--results", path, "--no-render")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Number of examples in test set is 1")
}

func TestRun_RendersCharts(t *testing.T) {
	root := newExperiment(t)
	out := filepath.Join(t.TempDir(), "charts")

	code, _, stderr := runCLI(t, "--root", root, "--out", out, "--open=false", "--format", "svg")
	require.Equal(t, exitOK, code, stderr)

	for _, name := range []string{"test_example0.svg", "test_example0.html"} {
		info, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestRun_DefaultOutputDir(t *testing.T) {
	root := newExperiment(t)

	code, _, stderr := runCLI(t, "--root", root, "--open=false", "--html=false", "--example_num", "1")
	require.Equal(t, exitOK, code, stderr)

	want := filepath.Join(os.TempDir(), "plots", "test_example1", "20260107_173129", "test_example1.png")
	t.Cleanup(func() { os.RemoveAll(filepath.Join(os.TempDir(), "plots", "test_example1", "20260107_173129")) })
	_, err := os.Stat(want)
	assert.NoError(t, err)
}

func TestRun_RejectsOutputOutsideAllowedDirs(t *testing.T) {
	root := newExperiment(t)
	code, _, stderr := runCLI(t, "--root", root, "--out", "/proc/self/charts", "--open=false")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "output directory must be within")
}

func TestRun_BadFormatAndFlags(t *testing.T) {
	root := newExperiment(t)

	code, _, stderr := runCLI(t, "--root", root, "--format", "bmp")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unsupported --format")

	code, _, _ = runCLI(t, "--example_num", "three")
	assert.Equal(t, exitUsage, code)
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "plot-traj "))
}
