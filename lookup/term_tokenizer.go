package lookup

import (
	"strings"

	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
)

type TermTokenizer func(term string) []string

// NewTermTokenizer splits keywords with the document tokenizer, so a keyword
// and its occurrence in text break into the same words.
func NewTermTokenizer() TermTokenizer {
	tokenize := tokenizer.NewTokenizer()

	return func(term string) []string {
		term = strings.Join(strings.Fields(term), " ")
		if len(term) == 0 {
			return []string{}
		}

		sent := types.Sentence{
			Span: types.Span{Begin: 0, End: int32(len([]rune(term))), Text: &term},
		}
		if err := tokenize(&sent); err != nil {
			// fall back to whitespace split
			return strings.Fields(strings.ToLower(term))
		}

		words := make([]string, 0, len(sent.Tokens))
		for _, token := range sent.Tokens {
			if token.IsNewline || token.IsSpace {
				continue
			}
			words = append(words, token.Lower())
		}
		return words
	}
}
