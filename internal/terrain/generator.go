package terrain

import (
	"errors"
	"fmt"
	"log"

	"heightfield/internal/heightfield"
	"heightfield/internal/profiling"
)

// Random source names accepted in Params.Source.
const (
	SourceUniform  = "uniform"
	SourceSplitMix = "splitmix"
)

// ErrUnknownSource is returned for an unrecognised Params.Source.
var ErrUnknownSource = errors.New("terrain: unknown random source")

// Params describes one heightfield.
type Params struct {
	Size int
	Seed int64
	// Corners are top-left, top-right, bottom-left, bottom-right seed
	// heights, saturated into the sample type.
	Corners   [4]float64
	Variance  float64 // perturbation bound at level 0
	Roughness float64 // per-level decay exponent; 1 halves the bound each level
	Source    string
}

// DefaultParams matches the classic 513×513 greyscale setup: corners at
// mid-grey, bound 64 halving per level.
func DefaultParams() Params {
	return Params{
		Size:      heightfield.SizeForOrder(9),
		Seed:      1,
		Corners:   [4]float64{128, 128, 128, 128},
		Variance:  64,
		Roughness: 1,
		Source:    SourceUniform,
	}
}

// Generator handles heightfield generation for a fixed set of params.
type Generator struct {
	params Params
}

// NewGenerator validates p and returns a Generator.
func NewGenerator(p Params) (*Generator, error) {
	if !heightfield.ValidSize(p.Size) {
		return nil, fmt.Errorf("%w: got %d", heightfield.ErrInvalidSize, p.Size)
	}
	if p.Variance < 0 {
		return nil, fmt.Errorf("terrain: variance must be >= 0, got %g", p.Variance)
	}
	if p.Roughness <= 0 {
		return nil, fmt.Errorf("terrain: roughness must be > 0, got %g", p.Roughness)
	}
	switch p.Source {
	case SourceUniform, SourceSplitMix:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, p.Source)
	}
	return &Generator{params: p}, nil
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params { return g.params }

// RandomSource returns a freshly seeded source so that every Generate call
// with the same params replays the same sequence.
func (g *Generator) RandomSource() heightfield.Random {
	if g.params.Source == SourceSplitMix {
		return heightfield.NewSplitMix(g.params.Seed)
	}
	return heightfield.NewUniform(g.params.Seed)
}

// Schedule returns the variance schedule for the params.
func (g *Generator) Schedule() heightfield.Variance {
	return heightfield.Roughness(g.params.Variance, g.params.Roughness)
}

// Generate allocates a grid, seeds its corners and runs diamond-square over it.
func Generate[T heightfield.Sample](g *Generator) (*Grid[T], error) {
	defer profiling.Track("terrain.Generate")()

	p := g.params
	grid := NewGrid[T](p.Size)
	grid.SeedCorners(
		heightfield.Saturate[T](p.Corners[0]),
		heightfield.Saturate[T](p.Corners[1]),
		heightfield.Saturate[T](p.Corners[2]),
		heightfield.Saturate[T](p.Corners[3]),
	)
	if err := heightfield.Run[T](p.Size, g.RandomSource(), g.Schedule(), grid); err != nil {
		return nil, fmt.Errorf("generate %dx%d: %w", p.Size, p.Size, err)
	}
	log.Printf("generated %dx%d heightfield (seed=%d source=%s variance=%g roughness=%g)",
		p.Size, p.Size, p.Seed, p.Source, p.Variance, p.Roughness)
	return grid, nil
}
