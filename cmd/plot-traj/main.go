// Command plot-traj draws the input, target and predicted paths of one
// example from a saved trajectory prediction result file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/banshee-data/trajplot/internal/config"
	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/banshee-data/trajplot/internal/monitoring"
	"github.com/banshee-data/trajplot/internal/plotter"
	"github.com/banshee-data/trajplot/internal/security"
	"github.com/banshee-data/trajplot/internal/timeutil"
	"github.com/banshee-data/trajplot/internal/trajectory"
	"github.com/banshee-data/trajplot/internal/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options holds the parsed command line.
type options struct {
	exampleNum int
	xScale     float64
	yScale     float64
	split      string

	root       string
	configPath string
	results    string
	outDir     string
	format     string
	html       bool
	open       bool
	serve      string
	noRender   bool
	verbose    bool
	version    bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	o := &options{}
	fs := flag.NewFlagSet("plot-traj", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.exampleNum, "example_num", 0, "the example number to be plotted")
	fs.Float64Var(&o.xScale, "x_scaling_factor", 0.36883, "true x = current_x * x_scaling_factor")
	fs.Float64Var(&o.yScale, "y_scaling_factor", 0.459005, "true y = current_y * y_scaling_factor")
	fs.StringVar(&o.split, "train_or_dev_or_test", "test", "choose among train, dev, and test")

	fs.StringVar(&o.root, "root", ".", "experiment directory containing save/ and log/")
	fs.StringVar(&o.configPath, "config", config.DefaultRunConfigPath, "run configuration JSON, relative to --root")
	fs.StringVar(&o.results, "results", "", "result file to load instead of the split's default")
	fs.StringVar(&o.outDir, "out", "", "directory for rendered charts (default: timestamped dir under the OS temp dir)")
	fs.StringVar(&o.format, "format", "png", "image format: "+strings.Join(plotter.ImageFormats, ", "))
	fs.BoolVar(&o.html, "html", true, "also write an interactive HTML chart")
	fs.BoolVar(&o.open, "open", true, "open the chart in the system viewer")
	fs.StringVar(&o.serve, "serve", "", "serve the chart on this address (e.g. localhost:8080) until interrupted")
	fs.BoolVar(&o.noRender, "no-render", false, "print the trace only")
	fs.BoolVar(&o.verbose, "verbose", false, "enable diagnostic logging")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	return fs, o
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], fsutil.OSFileSystem{}, os.Stdout, os.Stderr, timeutil.RealClock{})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, fsys fsutil.FileSystem, stdout, stderr io.Writer, clock timeutil.Clock) int {
	fs, o := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if o.version {
		fmt.Fprintln(stdout, version.String("plot-traj"))
		return exitOK
	}
	if o.verbose {
		monitoring.Enable(stderr, "plot-traj: ")
	}

	split, err := config.ParseSplit(o.split)
	if err != nil {
		fmt.Fprintf(stderr, "Execution stopped: %v\n", err)
		fs.Usage()
		return exitUsage
	}
	if !o.noRender && o.format != "" && !validFormat(o.format) {
		fmt.Fprintf(stderr, "unsupported --format %q (want one of %s)\n", o.format, strings.Join(plotter.ImageFormats, ", "))
		return exitUsage
	}

	resultPath, err := resolveResults(fsys, o, split, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Execution stopped: %v\n", err)
		return exitError
	}

	examples, err := trajectory.Load(fsys, resultPath)
	if err != nil {
		fmt.Fprintf(stderr, "Execution stopped: %v\n", err)
		return exitError
	}

	p := plotter.New(stdout)
	if !o.noRender {
		dir := o.outDir
		if dir == "" {
			dir = plotter.MakeOutputDir(os.TempDir(), split.String(), o.exampleNum, clock.Now())
		}
		if err := security.ValidateOutputDir(dir); err != nil {
			fmt.Fprintf(stderr, "Execution stopped: %v\n", err)
			return exitUsage
		}
		p.Renderers = append(p.Renderers, &plotter.GonumRenderer{FS: fsys, Dir: dir, Format: o.format})
		if o.html || o.serve != "" {
			p.Renderers = append(p.Renderers, &plotter.EChartsRenderer{FS: fsys, Dir: dir})
		}
		switch {
		case o.serve != "":
			p.Viewer = plotter.ServeViewer{FS: fsys, Addr: o.serve, Out: stdout}
		case o.open:
			p.Viewer = plotter.SystemViewer{}
		}
	}

	if _, err := p.Plot(ctx, examples, o.exampleNum, o.xScale, o.yScale, split.String()); err != nil {
		fmt.Fprintf(stderr, "Execution stopped: %v\n", err)
		return exitError
	}
	return exitOK
}

// resolveResults returns the result file to load. An explicit --results
// path wins; otherwise the run configuration supplies the testset for the
// split's path template.
func resolveResults(fsys fsutil.FileSystem, o *options, split config.Split, stdout io.Writer) (string, error) {
	if o.results != "" {
		return o.results, nil
	}

	cfgPath := o.configPath
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(o.root, cfgPath)
	}
	cfg, err := config.LoadRunConfig(fsys, cfgPath)
	if err != nil {
		return "", err
	}
	monitoring.Logf("run configuration %s: testset=%s", cfgPath, cfg.Testset)

	if split == config.Test {
		fmt.Fprintf(stdout, "For test set: %s,\n", cfg.Testset)
	}
	return config.ResolveResultPath(fsys, o.root, split, cfg.Testset)
}

func validFormat(format string) bool {
	for _, f := range plotter.ImageFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
