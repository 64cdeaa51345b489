package similarity

import "math"

// Vector maps a token to its number of occurrences in one document.
type Vector map[string]int

// TermFrequency counts occurrences of each distinct token.
func TermFrequency(tokens []string) Vector {
	v := make(Vector, len(tokens))
	for _, token := range tokens {
		v[token]++
	}
	return v
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, count := range v {
		sum += float64(count) * float64(count)
	}
	return math.Sqrt(sum)
}

// Dot returns the dot product of v and other. Keys missing on either side contribute zero.
func (v Vector) Dot(other Vector) float64 {
	small, large := v, other
	if len(small) > len(large) {
		small, large = large, small
	}
	dot := 0.0
	for token, count := range small {
		dot += float64(count) * float64(large[token])
	}
	return dot
}
