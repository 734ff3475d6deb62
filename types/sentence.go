package types

type SentenceAttributes struct {
	Sentiment *Sentiment
}

type Sentence struct {
	Span
	Tokens     []*Token
	Attributes SentenceAttributes
}

func (sent *Sentence) GetSpan() *Span {
	return &sent.Span
}

// Children returns the sentence indices of the tokens headed by idx.
func (sent *Sentence) Children(idx int) []int {
	var children []int
	for _, token := range sent.Tokens {
		if token.Index != idx && token.Head == idx {
			children = append(children, token.Index)
		}
	}
	return children
}

type Document struct {
	Text      string
	Sentences []*Sentence
}

func (doc *Document) Tokens() []*Token {
	var tokens []*Token
	for _, sent := range doc.Sentences {
		tokens = append(tokens, sent.Tokens...)
	}
	return tokens
}
