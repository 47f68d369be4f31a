package heightfield

import "math/rand"

// Uniform draws uniform reals from a seeded math/rand generator.
type Uniform struct {
	rnd *rand.Rand
}

// NewUniform creates a Uniform source; equal seeds give equal sequences.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rnd: rand.New(rand.NewSource(seed))}
}

func (u *Uniform) Random(magnitude float64) float64 {
	return u.rnd.Float64() * magnitude
}

// SplitMix is a SplitMix64 stream. It has no dependency on math/rand, so its
// sequence for a given seed is fixed across Go releases.
type SplitMix struct {
	state uint64
}

// NewSplitMix creates a SplitMix source.
func NewSplitMix(seed int64) *SplitMix {
	return &SplitMix{state: uint64(seed) * 0x9E3779B97F4A7C15}
}

// Uint64 advances the stream.
func (s *SplitMix) Uint64() uint64 {
	s.state += 0x9E3779B97F4A7C15
	v := s.state
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// Float64 returns a value in [0, 1) from the top 53 bits.
func (s *SplitMix) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

func (s *SplitMix) Random(magnitude float64) float64 {
	return s.Float64() * magnitude
}
