package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"heightfield/internal/export"
	"heightfield/internal/heightfield"
	"heightfield/internal/terrain"
)

// Bounds for Order; 14 gives a 16385×16385 grid.
const (
	MinOrder = 1
	MaxOrder = 14

	MinRoughness = 0.1
	MaxRoughness = 3.0
)

// Settings holds generator configuration. Zero Seed means "use the clock".
type Settings struct {
	Order     int     `env:"HEIGHTFIELD_ORDER" envDefault:"9"`
	Seed      int64   `env:"HEIGHTFIELD_SEED" envDefault:"0"`
	Corner    float64 `env:"HEIGHTFIELD_CORNER" envDefault:"128"`
	Variance  float64 `env:"HEIGHTFIELD_VARIANCE" envDefault:"64"`
	Roughness float64 `env:"HEIGHTFIELD_ROUGHNESS" envDefault:"1"`
	Depth     int     `env:"HEIGHTFIELD_DEPTH" envDefault:"8"`
	Source    string  `env:"HEIGHTFIELD_SOURCE" envDefault:"uniform"`
	Output    string  `env:"HEIGHTFIELD_OUTPUT" envDefault:"-"`
	Format    string  `env:"HEIGHTFIELD_FORMAT"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns defaults overridden by the environment, validated.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error
	if s.Order < MinOrder || s.Order > MaxOrder {
		errs = append(errs, fmt.Errorf("order must be in [%d, %d], got %d", MinOrder, MaxOrder, s.Order))
	}
	if s.Depth != 8 && s.Depth != 16 {
		errs = append(errs, fmt.Errorf("depth must be 8 or 16, got %d", s.Depth))
	}
	if s.Variance < 0 {
		errs = append(errs, fmt.Errorf("variance must be >= 0, got %g", s.Variance))
	}
	if s.Roughness <= 0 {
		errs = append(errs, fmt.Errorf("roughness must be > 0, got %g", s.Roughness))
	}
	switch s.Source {
	case terrain.SourceUniform, terrain.SourceSplitMix:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", terrain.ErrUnknownSource, s.Source))
	}
	if _, err := s.ResolveFormat(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Size returns the grid side for Order.
func (s Settings) Size() int {
	return heightfield.SizeForOrder(s.Order)
}

// ResolveFormat picks the explicit Format, else infers it from Output,
// else falls back to ASCII PGM.
func (s Settings) ResolveFormat() (export.Format, error) {
	if s.Format != "" {
		return export.ParseFormat(s.Format)
	}
	if s.Output == "" || s.Output == "-" {
		return export.PGM, nil
	}
	return export.FormatFromPath(s.Output)
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (s Settings) ResolveSeed(now time.Time) int64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return now.UnixNano()
}

// Params builds generator params using seed.
func (s Settings) Params(seed int64) terrain.Params {
	scale := s.depthScale()
	corner := s.Corner * scale
	return terrain.Params{
		Size:      s.Size(),
		Seed:      seed,
		Corners:   [4]float64{corner, corner, corner, corner},
		Variance:  s.Variance * scale,
		Roughness: s.Roughness,
		Source:    s.Source,
	}
}

// depthScale maps 8-bit style values onto 16-bit samples so the same
// settings give the same relief at either depth.
func (s Settings) depthScale() float64 {
	if s.Depth == 16 {
		return 257
	}
	return 1
}

// SetRoughness sets the roughness exponent, clamped to a usable range.
func (s *Settings) SetRoughness(r float64) {
	if r < MinRoughness {
		r = MinRoughness
	}
	if r > MaxRoughness {
		r = MaxRoughness
	}
	s.Roughness = r
}

// SetOrder sets the grid order, clamped to [MinOrder, MaxOrder].
func (s *Settings) SetOrder(order int) {
	if order < MinOrder {
		order = MinOrder
	}
	if order > MaxOrder {
		order = MaxOrder
	}
	s.Order = order
}
