package plotter

import (
	"fmt"
	"io"
)

// WriteTrace prints, per pedestrian, the scaled predicted and target x and y
// series in the form:
//
//	pred:
//	[x0 x1 ...]
//	[y0 y1 ...]
//	target:
//	[x0 x1 ...]
//	[y0 y1 ...]
//
// followed by a blank line.
func WriteTrace(w io.Writer, f *Figure) error {
	for i := 0; i < f.Pedestrians(); i++ {
		for _, kind := range []SeriesKind{KindPrediction, KindTarget} {
			c, ok := f.Curve(i, kind)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s:\n%v\n%v\n", kind, c.X, c.Y); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
