package heightfield

// DiamondSquareNoWrap fills a size×size grid through at, starting from the
// four corners, which the caller must have set. size-1 must be a power of
// two; this is not checked (see Run).
//
// Each level runs a square pass (cell centres from their four diagonal
// corners) followed by a diamond pass (edge midpoints). Border midpoints
// average only their two neighbours along the border; nothing wraps.
// Every new value is mean + random(v) - v/2 with v = variance(level).
func DiamondSquareNoWrap[T Sample](size int, random Random, variance Variance, at Accessor[T]) {
	edge := size - 1

	get := func(x, y int) float64 { return float64(*at.At(x, y)) }
	put := func(x, y int, mean, v float64) {
		*at.At(x, y) = Saturate[T](mean + random.Random(v) - v/2)
	}

	for step, level := edge/2, 0; step >= 1; step, level = step/2, level+1 {
		v := variance.Variance(level)
		span := 2 * step

		// Square pass.
		for y := step; y < edge; y += span {
			for x := step; x < edge; x += span {
				mean := (get(x-step, y-step) + get(x+step, y-step) +
					get(x-step, y+step) + get(x+step, y+step)) / 4
				put(x, y, mean, v)
			}
		}

		// Diamond pass.
		for y := 0; y <= edge; y += step {
			start := step
			if (y/step)%2 == 1 {
				start = 0
			}
			for x := start; x <= edge; x += span {
				var mean float64
				switch {
				case y == 0 || y == edge:
					mean = (get(x-step, y) + get(x+step, y)) / 2
				case x == 0 || x == edge:
					mean = (get(x, y-step) + get(x, y+step)) / 2
				default:
					mean = (get(x, y-step) + get(x, y+step) +
						get(x-step, y) + get(x+step, y)) / 4
				}
				put(x, y, mean, v)
			}
		}
	}
}
