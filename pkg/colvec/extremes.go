package colvec

import "math"

// GetExtremes returns the minimum and maximum value of the column, skipping
// NaN rows. An empty column yields the zero value twice. A float column
// consisting only of NaNs yields NaN for both; the payload of that NaN is
// not necessarily bit-identical to any NaN in the column.
func (c *Column[T]) GetExtremes() (min, max T) {
	if len(c.data) == 0 {
		return
	}

	hasValue := false
	curMin := nanOrZero[T]()
	curMax := nanOrZero[T]()

	for _, x := range c.data {
		if x != x { // NaN
			continue
		}
		if !hasValue {
			curMin = x
			curMax = x
			hasValue = true
			continue
		}
		if x < curMin {
			curMin = x
		}
		if x > curMax {
			curMax = x
		}
	}
	return curMin, curMax
}

// nanOrZero returns NaN for float instantiations and zero for integer ones.
func nanOrZero[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.NaN())
	}
	return zero
}
