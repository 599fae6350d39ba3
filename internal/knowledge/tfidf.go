package knowledge

import (
	"math"
	"regexp"
	"strings"
)

// Vector is a sparse L2-normalized term-weight vector keyed by vocabulary index
type Vector map[int]float64

// Vectorizer maps text into a TF-IDF vector space. Fit must be called before
// Transform; transforming with an unfitted vectorizer yields empty vectors.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Tokens are lowercase alphanumeric runs of at least two characters
var tokenPattern = regexp.MustCompile(`\w\w+`)

func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Fit builds the vocabulary and inverse-document-frequency weights over docs
func (v *Vectorizer) Fit(docs []string) {
	v.vocab = make(map[string]int)

	df := make([]int, 0)
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, tok := range tokenize(doc) {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if !seen[idx] {
				df[idx]++
				seen[idx] = true
			}
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1
	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}
}

// Transform projects a single document into the fitted space. Terms outside
// the vocabulary are ignored. The result is L2-normalized so that the dot
// product of two transformed vectors is their cosine similarity.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	for _, tok := range tokenize(doc) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Cosine returns the cosine similarity of two normalized sparse vectors
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}
