package utils

import "math"

// Ratio divide num por den com duas casas decimais; den zero resulta em zero.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return math.Round(num/den*100) / 100
}
