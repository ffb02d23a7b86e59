package plotter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ImageFormats are the gonum/plot output formats accepted by GonumRenderer.
var ImageFormats = []string{"png", "svg", "pdf", "jpg"}

// GonumRenderer writes the figure as a static image with gonum/plot.
type GonumRenderer struct {
	FS     fsutil.FileSystem
	Dir    string
	Format string // one of ImageFormats; png when empty
	Width  vg.Length
	Height vg.Length
}

// Render writes <Dir>/<name>.<Format>.
func (r *GonumRenderer) Render(f *Figure, name string) (string, error) {
	format := strings.ToLower(r.Format)
	if format == "" {
		format = "png"
	}
	if !validImageFormat(format) {
		return "", fmt.Errorf("unsupported image format %q (want one of %s)", r.Format, strings.Join(ImageFormats, ", "))
	}
	width, height := r.Width, r.Height
	if width == 0 {
		width = 10 * vg.Inch
	}
	if height == 0 {
		height = 8 * vg.Inch
	}

	p, err := NewGonumPlot(f)
	if err != nil {
		return "", err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return "", fmt.Errorf("failed to create %s canvas: %w", format, err)
	}

	if err := r.FS.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(r.Dir, name+"."+format)
	out, err := r.FS.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		out.Close()
		return "", fmt.Errorf("save %s plot: %w", format, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func validImageFormat(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return false
}

// NewGonumPlot lays out f on a gonum plot: dotted input lines, ring
// markers for predictions and dashed target lines.
func NewGonumPlot(f *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	if f.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, c := range f.Curves {
		pts := make(plotter.XYs, len(c.X))
		for i := range c.X {
			pts[i] = plotter.XY{X: c.X[i], Y: c.Y[i]}
		}

		switch c.Style {
		case StyleMarkers:
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Label, err)
			}
			s.GlyphStyle.Color = c.Color.RGBA
			s.GlyphStyle.Shape = draw.RingGlyph{}
			s.GlyphStyle.Radius = vg.Points(3)
			p.Add(s)
			if f.Legend {
				p.Legend.Add(c.Label, s)
			}
		default:
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.Label, err)
			}
			l.Color = c.Color.RGBA
			l.Width = vg.Points(1.5)
			if c.Style == StyleDashed {
				l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
			} else {
				l.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
			}
			p.Add(l)
			if f.Legend {
				p.Legend.Add(c.Label, l)
			}
		}
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}
