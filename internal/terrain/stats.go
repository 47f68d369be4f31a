package terrain

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"heightfield/internal/heightfield"
)

// Stats summarises the height distribution of a grid.
type Stats struct {
	Min, Max     float64
	Mean, StdDev float64
	Median       float64
}

func (s Stats) String() string {
	return fmt.Sprintf("min=%.1f max=%.1f mean=%.2f stddev=%.2f median=%.1f",
		s.Min, s.Max, s.Mean, s.StdDev, s.Median)
}

// Summarize computes Stats over every sample in g.
func Summarize[T heightfield.Sample](g *Grid[T]) Stats {
	values := g.Values()
	if len(values) == 0 {
		return Stats{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}
	sort.Float64s(values)
	return Stats{
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, values, nil),
	}
}
