package types

type AspectMention struct {
	// Span covers the matched keyword.
	Span
	Aspect  string
	Keyword string
	// first and last sentence token index of the keyword
	TokenBegin int
	TokenEnd   int
	Sentence   *Sentence
	Clause     Span
	Sentiment  Sentiment
	Negated    bool
	Attributes map[string]interface{}
}

func (mention *AspectMention) GetSpan() *Span {
	return &mention.Span
}
