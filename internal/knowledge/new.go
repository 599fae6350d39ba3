package knowledge

import "fmt"

type implBase struct {
	sentences  []string
	vectorizer *Vectorizer
	vectors    []Vector
}

// New builds a knowledge base from a plain-text file: load, split, fit
func New(path string) (Base, error) {
	text, err := LoadText(path)
	if err != nil {
		return nil, err
	}
	return NewFromText(text)
}

// NewFromText builds a knowledge base from raw text. The vectorizer is
// fitted over the split sentences before any sentence is transformed.
func NewFromText(text string) (Base, error) {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil, fmt.Errorf("no sentences found in text")
	}

	vectorizer := &Vectorizer{}
	vectorizer.Fit(sentences)

	vectors := make([]Vector, len(sentences))
	for i, s := range sentences {
		vectors[i] = vectorizer.Transform(s)
	}

	return &implBase{
		sentences:  sentences,
		vectorizer: vectorizer,
		vectors:    vectors,
	}, nil
}
