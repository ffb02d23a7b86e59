// Package plotter renders one trajectory prediction example: the observed
// input path, the predicted positions and the ground-truth target path for
// every pedestrian, on shared x/y axes.
//
// Plot builds a renderer-neutral Figure, prints the predicted and target
// series to the console, and hands the figure to each configured Renderer
// (gonum/plot images, go-echarts HTML) before passing the written files to
// a Viewer.
package plotter
