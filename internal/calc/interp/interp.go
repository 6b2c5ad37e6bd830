// Package interp implements clamped piecewise-linear lookup over break-point tables.
package interp

import "sort"

// Table maps a threshold to a value. Keys need not be inserted in order.
type Table map[float64]float64

// Interpolate returns the value at x, clamping to the end values outside the
// key range. The table is not modified. An empty table yields 0.
func Interpolate(t Table, x float64) float64 {
	if len(t) == 0 {
		return 0
	}
	keys := make([]float64, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	if x <= keys[0] {
		return t[keys[0]]
	}
	last := keys[len(keys)-1]
	if x >= last {
		return t[last]
	}

	for i := 0; i < len(keys)-1; i++ {
		x1, x2 := keys[i], keys[i+1]
		if x1 <= x && x < x2 {
			y1, y2 := t[x1], t[x2]
			return y1 + (y2-y1)*(x-x1)/(x2-x1)
		}
	}
	// NaN input falls through every comparison.
	return t[keys[0]]
}
