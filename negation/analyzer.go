package negation

import (
	"errors"

	"text2phenotype.com/absa/types"
)

type Scope string

const (
	ScopeLeft  Scope = "left"
	ScopeRight Scope = "right"
)

const (
	DefaultMaxLeftScopeSize  = 8
	DefaultMaxRightScopeSize = 5
)

var (
	ErrNilSentence      = errors.New("negation analyzer: mention sentence is nil")
	ErrTokensNotFound   = errors.New("negation analyzer: sentence doesn't contain tokens")
	ErrUnsupportedScope = errors.New("negation analyzer: scope is not supported")
)

func DefaultScopes() []Scope {
	return []Scope{ScopeLeft, ScopeRight}
}

// NegationAnalyzer reports for every mention whether a negation cue governs it.
type NegationAnalyzer func(mentions []types.AspectMention, scopes []Scope) ([]bool, error)

func NewNegationAnalyzer(maxLeftScopeSize int, maxRightScopeSize int, boundaries map[string]bool) NegationAnalyzer {

	ctxAnalyzer := NewNegationContextAnalyzer(boundaries)

	sizes := map[Scope]int{
		ScopeLeft:  maxLeftScopeSize,
		ScopeRight: maxRightScopeSize,
	}

	return func(mentions []types.AspectMention, scopes []Scope) ([]bool, error) {
		negated := make([]bool, len(mentions))
		for i, mention := range mentions {
			for _, scope := range scopes {
				scopeSize, ok := sizes[scope]
				if !ok {
					return nil, ErrUnsupportedScope
				}
				tokens, err := getScopeTokens(ctxAnalyzer, scopeSize, mention, scope)
				if err != nil {
					return nil, err
				}

				if ctxAnalyzer.AnalyzeContext(tokens) {
					negated[i] = true
					break
				}
			}
		}
		return negated, nil
	}
}

func getScopeTokens(ctxAnalyzer ContextAnalyzer, scopeSize int, mention types.AspectMention, scope Scope) ([]*types.Token, error) {
	sentence := mention.Sentence
	if sentence == nil {
		return nil, ErrNilSentence
	}

	tokens := sentence.Tokens
	if len(tokens) == 0 {
		return nil, ErrTokensNotFound
	}

	startTokenIdx, endTokenIdx := mentionTokens(tokens, mention)

	scopeTokens := make([]*types.Token, 0, scopeSize+1)
	switch scope {
	case ScopeLeft:
		for i := startTokenIdx - 1; i >= 0 && len(scopeTokens) < scopeSize; i-- {
			if ctxAnalyzer.IsBoundary(tokens[i]) {
				break
			}
			scopeTokens = append(scopeTokens, tokens[i])
		}

		// reverse collection
		for i, j := 0, len(scopeTokens)-1; i < j; i, j = i+1, j-1 {
			scopeTokens[i], scopeTokens[j] = scopeTokens[j], scopeTokens[i]
		}
	case ScopeRight:
		for i := endTokenIdx + 1; i < len(tokens) && len(scopeTokens) < scopeSize; i++ {
			if ctxAnalyzer.IsBoundary(tokens[i]) {
				break
			}
			scopeTokens = append(scopeTokens, tokens[i])
		}
	default:
		return nil, ErrUnsupportedScope
	}

	scopeTokens = append(scopeTokens, getEOSToken())
	return scopeTokens, nil
}

// mentionTokens prefers the token indices of the mention and falls back to
// its character span.
func mentionTokens(tokens []*types.Token, mention types.AspectMention) (int, int) {
	begin, end := mention.TokenBegin, mention.TokenEnd
	if begin >= 0 && end >= begin && end < len(tokens) &&
		tokens[begin].Begin == mention.Begin && tokens[end].End == mention.End {
		return begin, end
	}

	begin, end = -1, -1
	for i := 0; i < len(tokens); i++ {
		if begin < 0 && tokens[i].Begin >= mention.Begin {
			begin = i
		}
		if tokens[i].Begin >= mention.Begin && tokens[i].End <= mention.End {
			end = i
		}
	}
	if begin < 0 {
		begin = len(tokens)
	}
	if end < 0 {
		end = begin - 1
	}
	return begin, end
}

func getEOSToken() *types.Token {
	txt := "<EOS>"
	return &types.Token{
		Span: types.Span{
			Text: &txt,
		},
	}
}
