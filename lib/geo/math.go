package geo

import "math"

// PRECISION is the tolerance used when comparing derived coordinates,
// which accumulate floating point error across projection and scaling.
const PRECISION = 0.0001

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	switch {
	case x1 == x2:
		return math.Abs(y1 - y2)
	case y1 == y2:
		return math.Abs(x1 - x2)
	default:
		return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	}
}

// PrecisionCompare orders a and b, treating them as equal when they
// differ by less than e.
func PrecisionCompare(a, b, e float64) int {
	switch {
	case math.Abs(a-b) < e:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}
