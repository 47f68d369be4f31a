package heightfield

import (
	"math"
	"testing"
)

func TestHalvingSchedule(t *testing.T) {
	v := Halving(64)
	want := []float64{64, 32, 16, 8, 4, 2, 1, 0.5}
	for level, w := range want {
		if got := v.Variance(level); math.Abs(got-w) > 1e-12 {
			t.Errorf("Halving(64).Variance(%d) = %f, want %f", level, got, w)
		}
	}
}

func TestRoughnessSchedule(t *testing.T) {
	smooth := Roughness(64, 1.5)
	rough := Roughness(64, 0.5)
	for level := 1; level < 8; level++ {
		if smooth.Variance(level) >= rough.Variance(level) {
			t.Errorf("level %d: smooth %f >= rough %f", level, smooth.Variance(level), rough.Variance(level))
		}
		if rough.Variance(level) >= rough.Variance(level-1) {
			t.Errorf("level %d: schedule not decreasing", level)
		}
	}
	if got := Roughness(10, 0).Variance(5); got != 10 {
		t.Errorf("Roughness(10, 0).Variance(5) = %f, want 10", got)
	}
}

func TestUniformRange(t *testing.T) {
	u := NewUniform(12345)
	for i := 0; i < 10000; i++ {
		v := u.Random(64)
		if v < 0 || v >= 64 {
			t.Fatalf("Uniform.Random(64) = %f, out of [0,64)", v)
		}
	}
	if got := u.Random(0); got != 0 {
		t.Errorf("Uniform.Random(0) = %f, want 0", got)
	}
}

func TestUniformDeterministic(t *testing.T) {
	a, b := NewUniform(99), NewUniform(99)
	for i := 0; i < 100; i++ {
		if x, y := a.Random(1), b.Random(1); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestSplitMixRangeAndSeeds(t *testing.T) {
	s := NewSplitMix(42)
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		v := s.Random(1)
		if v < 0 || v >= 1 {
			t.Fatalf("SplitMix.Random(1) = %f, out of [0,1)", v)
		}
		sum += v
	}
	// Mean of a uniform [0,1) sample should sit near 0.5.
	if mean := sum / n; mean < 0.45 || mean > 0.55 {
		t.Errorf("SplitMix mean = %f, want ~0.5", mean)
	}

	if NewSplitMix(1).Uint64() == NewSplitMix(2).Uint64() {
		t.Errorf("different seeds produced the same first value")
	}
}

func TestValidSize(t *testing.T) {
	valid := []int{3, 5, 9, 17, 33, 65, 129, 257, 513, 1025}
	for _, s := range valid {
		if !ValidSize(s) {
			t.Errorf("ValidSize(%d) = false, want true", s)
		}
	}
	invalid := []int{-5, 0, 1, 2, 4, 6, 7, 10, 512, 514, 1000}
	for _, s := range invalid {
		if ValidSize(s) {
			t.Errorf("ValidSize(%d) = true, want false", s)
		}
	}
}

func TestSizeForOrder(t *testing.T) {
	for order := 1; order <= 12; order++ {
		size := SizeForOrder(order)
		if !ValidSize(size) {
			t.Errorf("SizeForOrder(%d) = %d is not valid", order, size)
		}
		if got := OrderForSize(size); got != order {
			t.Errorf("OrderForSize(%d) = %d, want %d", size, got, order)
		}
	}
	if got := SizeForOrder(9); got != 513 {
		t.Errorf("SizeForOrder(9) = %d, want 513", got)
	}
	if got := SizeForOrder(-1); got != 0 {
		t.Errorf("SizeForOrder(-1) = %d, want 0", got)
	}
	if got := OrderForSize(10); got != -1 {
		t.Errorf("OrderForSize(10) = %d, want -1", got)
	}
}

func TestSaturate(t *testing.T) {
	if got := Saturate[uint8](-3); got != 0 {
		t.Errorf("Saturate[uint8](-3) = %d", got)
	}
	if got := Saturate[uint8](300); got != 255 {
		t.Errorf("Saturate[uint8](300) = %d", got)
	}
	if got := Saturate[uint8](12.9); got != 12 {
		t.Errorf("Saturate[uint8](12.9) = %d", got)
	}
	if got := Saturate[uint16](math.NaN()); got != 0 {
		t.Errorf("Saturate[uint16](NaN) = %d", got)
	}
	if got := Saturate[uint64](math.Inf(1)); got != math.MaxUint64 {
		t.Errorf("Saturate[uint64](+Inf) = %d", got)
	}
	if got := MaxSample[uint16](); got != math.MaxUint16 {
		t.Errorf("MaxSample[uint16]() = %d", got)
	}
}
