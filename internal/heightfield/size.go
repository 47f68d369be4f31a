package heightfield

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidSize is returned when a grid side is not 2^n + 1 with n >= 1.
var ErrInvalidSize = errors.New("heightfield: size must be 2^n + 1 and at least 3")

// MaxOrder bounds SizeForOrder so the side length always fits in an int.
const MaxOrder = 30

// ValidSize reports whether size is a usable grid side for the engine.
func ValidSize(size int) bool {
	if size < 3 {
		return false
	}
	return bits.OnesCount(uint(size-1)) == 1
}

// SizeForOrder returns 2^order + 1.
func SizeForOrder(order int) int {
	if order < 0 || order > MaxOrder {
		return 0
	}
	return 1<<order + 1
}

// OrderForSize is the inverse of SizeForOrder; it returns -1 for invalid sizes.
func OrderForSize(size int) int {
	if !ValidSize(size) {
		return -1
	}
	return bits.TrailingZeros(uint(size - 1))
}

// Run validates size and then runs DiamondSquareNoWrap.
func Run[T Sample](size int, random Random, variance Variance, at Accessor[T]) error {
	if !ValidSize(size) {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if random == nil || variance == nil || at == nil {
		return errors.New("heightfield: random, variance and accessor are required")
	}
	DiamondSquareNoWrap(size, random, variance, at)
	return nil
}
