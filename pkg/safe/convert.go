// Package safe converts between integer widths, failing instead of wrapping.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v when it fits in a uint32.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, rangeError(v, "uint32")
	}
	return uint32(v), nil
}

// Uint64 converts v when it is not negative.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, rangeError(v, "uint64")
	}
	return uint64(v), nil
}

// Int converts v when it fits in an int.
func Int[T Integer](v T) (int, error) {
	if v > 0 && uint64(v) > math.MaxInt {
		return 0, rangeError(v, "int")
	}
	return int(v), nil
}

// Int64 converts v when it fits in an int64.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, rangeError(v, "int64")
	}
	return int64(v), nil
}

// MustUint32 is Uint32 for values already bounded by the caller, such as
// slice lengths read from a uint32 field. It clamps instead of failing.
func MustUint32[T Integer](v T) uint32 {
	n, err := Uint32(v)
	if err != nil {
		if v < 0 {
			return 0
		}
		return math.MaxUint32
	}
	return n
}

func rangeError[T Integer](v T, target string) error {
	return fmt.Errorf("value %d out of %s range", v, target)
}
