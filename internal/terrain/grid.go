package terrain

import (
	"heightfield/internal/heightfield"
)

// Grid is a square heightfield stored row-major.
type Grid[T heightfield.Sample] struct {
	size  int
	cells []T
}

// NewGrid allocates a size×size grid of zero samples.
func NewGrid[T heightfield.Sample](size int) *Grid[T] {
	if size < 0 {
		size = 0
	}
	return &Grid[T]{size: size, cells: make([]T, size*size)}
}

// Size returns the side length.
func (g *Grid[T]) Size() int { return g.size }

// Edge returns the largest valid coordinate.
func (g *Grid[T]) Edge() int { return g.size - 1 }

// At returns a reference to the sample at (x, y). Coordinates must be in
// [0, Size); this is the accessor handed to the engine.
func (g *Grid[T]) At(x, y int) *T {
	return &g.cells[y*g.size+x]
}

// Get returns the sample at (x, y), or 0 outside the grid.
func (g *Grid[T]) Get(x, y int) T {
	if !g.contains(x, y) {
		return 0
	}
	return g.cells[y*g.size+x]
}

// Set stores v at (x, y); out-of-range writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.contains(x, y) {
		return
	}
	g.cells[y*g.size+x] = v
}

func (g *Grid[T]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// SeedCorners sets the four corner samples the engine starts from.
func (g *Grid[T]) SeedCorners(topLeft, topRight, bottomLeft, bottomRight T) {
	e := g.Edge()
	g.Set(0, 0, topLeft)
	g.Set(e, 0, topRight)
	g.Set(0, e, bottomLeft)
	g.Set(e, e, bottomRight)
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (g *Grid[T]) Corners() [4]T {
	e := g.Edge()
	return [4]T{g.Get(0, 0), g.Get(e, 0), g.Get(0, e), g.Get(e, e)}
}

// Row returns row y without copying. Callers must not retain it across
// writes they do not expect.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.size {
		return nil
	}
	return g.cells[y*g.size : (y+1)*g.size]
}

// Cells returns the backing slice in row-major order.
func (g *Grid[T]) Cells() []T { return g.cells }

// Values copies every sample into a float64 slice, row-major.
func (g *Grid[T]) Values() []float64 {
	out := make([]float64, len(g.cells))
	for i, v := range g.cells {
		out[i] = float64(v)
	}
	return out
}

// Equal reports whether both grids have the same size and samples.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
