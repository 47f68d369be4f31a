package heightfield

// Sample is the storage type of a single height value.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Random returns a value drawn uniformly from [0, magnitude).
type Random interface {
	Random(magnitude float64) float64
}

// RandomFunc adapts a plain function to Random.
type RandomFunc func(magnitude float64) float64

func (f RandomFunc) Random(magnitude float64) float64 { return f(magnitude) }

// Variance returns the perturbation bound for a subdivision level (0 = coarsest).
type Variance interface {
	Variance(level int) float64
}

// VarianceFunc adapts a plain function to Variance.
type VarianceFunc func(level int) float64

func (f VarianceFunc) Variance(level int) float64 { return f(level) }

// Accessor yields a mutable reference to the sample stored at (x, y).
type Accessor[T Sample] interface {
	At(x, y int) *T
}

// AccessorFunc adapts a plain function to Accessor.
type AccessorFunc[T Sample] func(x, y int) *T

func (f AccessorFunc[T]) At(x, y int) *T { return f(x, y) }

// MaxSample returns the largest value representable by T.
func MaxSample[T Sample]() T {
	var zero T
	return ^zero
}

// Saturate converts v to T, clamping to [0, MaxSample] and truncating toward zero.
func Saturate[T Sample](v float64) T {
	if v != v || v <= 0 {
		return 0
	}
	top := MaxSample[T]()
	if v >= float64(top) {
		return top
	}
	return T(v)
}
