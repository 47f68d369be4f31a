package heightfield

import "math"

// Halving is the reference schedule: initial, initial/2, initial/4, ...
func Halving(initial float64) Variance {
	return Roughness(initial, 1)
}

// Roughness scales the bound by 2^-h per level. Smaller h keeps more
// high-frequency detail; h = 1 halves the bound every level.
func Roughness(initial, h float64) Variance {
	factor := math.Pow(2, -h)
	return VarianceFunc(func(level int) float64 {
		if level <= 0 {
			return initial
		}
		return initial * math.Pow(factor, float64(level))
	})
}

// Constant uses the same bound at every level.
func Constant(v float64) Variance {
	return VarianceFunc(func(int) float64 { return v })
}
