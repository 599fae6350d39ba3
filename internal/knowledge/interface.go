package knowledge

// Match is a single ranked answer candidate
type Match struct {
	Index int
	Score float64
	Text  string
}

// Base defines the interface for a fitted question-answering knowledge base
type Base interface {
	Answer(question string, topK int) []Match
	Size() int
}
