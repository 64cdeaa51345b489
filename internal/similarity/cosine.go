package similarity

// Cosine returns the cosine of the angle between two vectors, in [0,1].
// A zero vector on either side yields 0.
func Cosine(a, b Vector) float64 {
	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0.0
	}
	sim := a.Dot(b) / (na * nb)
	// Guard against floating point drift above 1 for identical vectors
	if sim > 1.0 {
		sim = 1.0
	}
	return sim
}

// CosineText tokenizes both texts and returns the cosine similarity of their
// term-frequency vectors.
func CosineText(a, b string) float64 {
	return Cosine(TermFrequency(Tokenize(a)), TermFrequency(Tokenize(b)))
}
