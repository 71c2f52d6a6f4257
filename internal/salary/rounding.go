package salary

import "math"

// round1 rounds to one decimal, halves towards +Inf. The explicit float64
// conversion stops the multiply from being fused into a later add.
func round1(x float64) float64 {
	v := float64(x * 10)
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r / 10
}
