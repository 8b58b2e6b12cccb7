package transform

import "math"

// Entropy returns the Shannon entropy of data in bits: -Σ p·log2(p) over the
// relative frequency p of each distinct value. An empty sequence has entropy 0.
//
// Values are visited in ascending order so the floating-point sum is the
// same on every call.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	n := float64(len(data))
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
