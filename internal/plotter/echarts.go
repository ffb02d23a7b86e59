package plotter

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// EChartsRenderer writes the figure as an interactive HTML page.
type EChartsRenderer struct {
	FS  fsutil.FileSystem
	Dir string
	// AssetsHost overrides where the echarts script is loaded from.
	AssetsHost string
}

// Render writes <Dir>/<name>.html.
func (r *EChartsRenderer) Render(f *Figure, name string) (string, error) {
	var buf bytes.Buffer
	if err := NewEChart(f, r.AssetsHost).Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	if err := r.FS.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(r.Dir, name+".html")
	out, err := r.FS.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// echartsLineType maps a Style to an echarts lineStyle.type.
func echartsLineType(s Style) string {
	if s == StyleDashed {
		return "dashed"
	}
	return "dotted"
}

// NewEChart builds a line chart with value axes for the connected curves
// and overlaps a scatter chart carrying the prediction markers.
func NewEChart(f *Figure, assetsHost string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: f.Title, Width: "1000px", Height: "800px", AssetsHost: assetsHost}),
		charts.WithTitleOpts(opts.Title{Title: f.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(f.Legend), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:         "value",
			Name:         f.XLabel,
			NameLocation: "middle",
			NameGap:      25,
			SplitLine:    &opts.SplitLine{Show: opts.Bool(f.Grid)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:         "value",
			Name:         f.YLabel,
			NameLocation: "middle",
			NameGap:      30,
			SplitLine:    &opts.SplitLine{Show: opts.Bool(f.Grid)},
		}),
	)

	scatter := charts.NewScatter()
	for _, c := range f.Curves {
		if c.Style == StyleMarkers {
			data := make([]opts.ScatterData, len(c.X))
			for i := range c.X {
				data[i] = opts.ScatterData{Value: []interface{}{c.X[i], c.Y[i]}}
			}
			scatter.AddSeries(c.Label, data,
				charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Color.Hex()}),
			)
			continue
		}

		data := make([]opts.LineData, len(c.X))
		for i := range c.X {
			data[i] = opts.LineData{Value: []interface{}{c.X[i], c.Y[i]}}
		}
		line.AddSeries(c.Label, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: c.Color.Hex(), Width: 2, Type: echartsLineType(c.Style)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Color.Hex()}),
		)
	}
	line.Overlap(scatter)
	return line
}
