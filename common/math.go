package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return min(max(v, lo), hi)
}

func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func Floor(v float32) int {
	return int(math.Floor(float64(v)))
}

func Ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}

func Round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
