package vsf

import (
	"math"
)

// Missing returns the sentinel marking an absent sample.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v is the missing-sample sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

func isNoData(v, nodata float64) bool {
	if math.IsNaN(nodata) {
		return math.IsNaN(v)
	}
	epsilon := math.Nextafter(1, 2) - 1
	return math.Abs(v-nodata) <= epsilon
}
