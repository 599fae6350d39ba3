package knowledge

import "sort"

// Answer projects the question into the fitted vector space and returns the
// topK highest-scoring sentences by cosine similarity. Ties are broken by
// lowest original index, so a question sharing no vocabulary with the corpus
// still deterministically returns the first sentence.
func (b *implBase) Answer(question string, topK int) []Match {
	qVec := b.vectorizer.Transform(question)

	matches := make([]Match, len(b.sentences))
	for i, vec := range b.vectors {
		matches[i] = Match{
			Index: i,
			Score: Cosine(qVec, vec),
			Text:  b.sentences[i],
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK < 1 {
		topK = 1
	}
	if topK > len(matches) {
		topK = len(matches)
	}
	return matches[:topK]
}

// Size returns the number of sentences in the base
func (b *implBase) Size() int {
	return len(b.sentences)
}
