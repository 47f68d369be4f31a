package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"heightfield/internal/heightfield"
	"heightfield/internal/profiling"
	"heightfield/internal/terrain"
)

// viridis matches the palette used for grid heatmaps elsewhere.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Surface writes an interactive 3D surface of g as a standalone HTML page.
// Every stride-th row and column is plotted; the far edges are always kept.
func Surface[T heightfield.Sample](w io.Writer, g *terrain.Grid[T], stride int, title string) error {
	defer profiling.Track("report.Surface")()

	if stride < 1 {
		return fmt.Errorf("surface: stride must be >= 1, got %d", stride)
	}
	size := g.Size()
	if size == 0 {
		return fmt.Errorf("surface: empty grid")
	}

	axis := sampleAxis(size, stride)
	data := make([]opts.Chart3DData, 0, len(axis)*len(axis))
	top := float32(0)
	for _, y := range axis {
		for _, x := range axis {
			h := g.Get(x, y)
			if float32(h) > top {
				top = float32(h)
			}
			data = append(data, opts.Chart3DData{Value: []interface{}{x, y, h}})
		}
	}
	if top == 0 {
		top = 1
	}

	surface := charts.NewSurface3D()
	surface.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("size=%d stride=%d points=%d", size, stride, len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        top,
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	surface.AddSeries("height", data)

	if err := surface.Render(w); err != nil {
		return fmt.Errorf("surface: render: %w", err)
	}
	return nil
}

// sampleAxis returns 0, stride, 2*stride, ... and always the last index.
func sampleAxis(size, stride int) []int {
	axis := make([]int, 0, size/stride+2)
	for i := 0; i < size; i += stride {
		axis = append(axis, i)
	}
	if last := size - 1; axis[len(axis)-1] != last {
		axis = append(axis, last)
	}
	return axis
}
