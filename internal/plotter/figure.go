package plotter

import (
	"fmt"

	"github.com/banshee-data/trajplot/internal/trajectory"
	"gonum.org/v1/gonum/mat"
)

// SeriesKind is the role of a curve within an example.
type SeriesKind int

const (
	KindInput SeriesKind = iota
	KindPrediction
	KindTarget
)

func (k SeriesKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindPrediction:
		return "pred"
	case KindTarget:
		return "target"
	default:
		return fmt.Sprintf("SeriesKind(%d)", int(k))
	}
}

// Style is how a curve is drawn.
type Style int

const (
	StyleDotted  Style = iota // connected, dotted
	StyleMarkers              // points only
	StyleDashed               // connected, dashed
)

// Style returns the drawing style used for kind.
func (k SeriesKind) Style() Style {
	switch k {
	case KindPrediction:
		return StyleMarkers
	case KindTarget:
		return StyleDashed
	default:
		return StyleDotted
	}
}

// Curve is one pedestrian's path for one series kind, already scaled.
type Curve struct {
	Pedestrian int
	Kind       SeriesKind
	Label      string
	Color      PaletteColor
	Style      Style
	X          []float64
	Y          []float64
}

// Figure is a renderer-neutral description of the chart.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	Legend bool
	Curves []Curve
}

// BuildFigure deinterleaves and scales the three matrices of ex and lays
// out input, prediction and target curves for each pedestrian in turn.
func BuildFigure(ex trajectory.Example, xScale, yScale float64) (*Figure, error) {
	if err := ex.Validate(); err != nil {
		return nil, err
	}

	f := &Figure{XLabel: "x", YLabel: "y", Grid: true, Legend: true}

	type layer struct {
		kind   SeriesKind
		xs, ys [][]float64
	}
	sources := []struct {
		kind SeriesKind
		m    *mat.Dense
	}{
		{KindInput, ex.Input},
		{KindPrediction, ex.Prediction},
		{KindTarget, ex.Target},
	}
	layers := make([]layer, 0, len(sources))
	for _, src := range sources {
		xs, ys := trajectory.Deinterleave(src.m)
		layers = append(layers, layer{
			kind: src.kind,
			xs:   trajectory.ScaleAll(xs, xScale),
			ys:   trajectory.ScaleAll(ys, yScale),
		})
	}

	for i := 0; i < ex.Pedestrians(); i++ {
		col := ColorFor(i)
		for _, l := range layers {
			f.Curves = append(f.Curves, Curve{
				Pedestrian: i,
				Kind:       l.kind,
				Label:      fmt.Sprintf("%s %d", l.kind, i),
				Color:      col,
				Style:      l.kind.Style(),
				X:          l.xs[i],
				Y:          l.ys[i],
			})
		}
	}
	return f, nil
}

// Pedestrians returns the number of distinct pedestrians in f.
func (f *Figure) Pedestrians() int {
	n := 0
	for _, c := range f.Curves {
		if c.Pedestrian+1 > n {
			n = c.Pedestrian + 1
		}
	}
	return n
}

// Curve returns the curve of kind for pedestrian.
func (f *Figure) Curve(pedestrian int, kind SeriesKind) (Curve, bool) {
	for _, c := range f.Curves {
		if c.Pedestrian == pedestrian && c.Kind == kind {
			return c, true
		}
	}
	return Curve{}, false
}
