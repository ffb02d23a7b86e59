package plotter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/trajplot/internal/monitoring"
	"github.com/banshee-data/trajplot/internal/trajectory"
)

// Renderer writes a figure to one output file and returns its path.
type Renderer interface {
	Render(f *Figure, name string) (string, error)
}

// Viewer presents rendered files to the user. Show may block, for example
// until ctx is cancelled.
type Viewer interface {
	Show(ctx context.Context, paths []string) error
}

// Plotter draws one example of a result collection.
type Plotter struct {
	// Out receives the example count and the per-pedestrian trace.
	Out io.Writer
	// Renderers are run in order; none means trace only.
	Renderers []Renderer
	// Viewer, if set, is given every rendered path.
	Viewer Viewer
}

// New returns a Plotter that writes its trace to out, or to stdout when out
// is nil.
func New(out io.Writer, renderers ...Renderer) *Plotter {
	if out == nil {
		out = os.Stdout
	}
	return &Plotter{Out: out, Renderers: renderers}
}

// Plot selects example index from examples, scales it by xScale/yScale and
// renders it. split only names the collection in messages. The returned
// figure is the one handed to the renderers.
func (p *Plotter) Plot(ctx context.Context, examples *trajectory.Collection, index int, xScale, yScale float64, split string) (*Figure, error) {
	fmt.Fprintf(p.Out, "Number of examples in %s set is %d\n", split, examples.Len())

	ex, err := examples.At(split, index)
	if err != nil {
		return nil, err
	}

	fig, err := BuildFigure(ex, xScale, yScale)
	if err != nil {
		return nil, fmt.Errorf("%s example %d: %w", split, index, err)
	}
	fig.Title = fmt.Sprintf("%s example %d", split, index)
	monitoring.Logf("built figure for %s example %d: %d pedestrians, %d curves", split, index, fig.Pedestrians(), len(fig.Curves))

	if err := WriteTrace(p.Out, fig); err != nil {
		return nil, fmt.Errorf("failed to write trace: %w", err)
	}

	name := OutputName(split, index)
	paths := make([]string, 0, len(p.Renderers))
	for _, r := range p.Renderers {
		path, err := r.Render(fig, name)
		if err != nil {
			return fig, fmt.Errorf("render: %w", err)
		}
		monitoring.Logf("wrote %s", path)
		paths = append(paths, path)
	}

	if p.Viewer != nil && len(paths) > 0 {
		if err := p.Viewer.Show(ctx, paths); err != nil {
			return fig, fmt.Errorf("display: %w", err)
		}
	}
	return fig, nil
}
