package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses free-form numeric input. Anything that is not a finite
// number yields 0 so callers always get a defined value. A trailing percent
// sign is accepted.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clamp bounds v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampMin bounds v below by lo only.
func clampMin(v, lo float64) float64 {
	return clamp(v, lo, math.Inf(1))
}
