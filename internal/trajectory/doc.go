// Package trajectory models trajectory prediction results: examples of
// input, target and predicted paths for several pedestrians, stored as
// matrices whose rows interleave x and y coordinates (x0, y0, x1, y1, ...)
// and whose columns are time steps.
//
// The input matrix covers the observed history and the target and
// prediction matrices cover the forecast horizon, so the input may have a
// different number of columns. All three must have the same number of rows.
package trajectory
