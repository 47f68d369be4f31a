package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"heightfield/internal/heightfield"
	"heightfield/internal/profiling"
	"heightfield/internal/terrain"
)

// Histogram writes a PNG histogram of g's heights using the given bin count.
func Histogram[T heightfield.Sample](w io.Writer, g *terrain.Grid[T], bins int) error {
	defer profiling.Track("report.Histogram")()

	if bins < 1 {
		return fmt.Errorf("histogram: bins must be >= 1, got %d", bins)
	}
	values := plotter.Values(g.Values())
	if len(values) == 0 {
		return fmt.Errorf("histogram: empty grid")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Height distribution (%dx%d)", g.Size(), g.Size())
	p.X.Label.Text = "height"
	p.Y.Label.Text = "cells"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("histogram: write: %w", err)
	}
	return nil
}
