package negation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
)

func mentionOf(t *testing.T, text string, keyword string) types.AspectMention {
	t.Helper()
	sent := &types.Sentence{
		Span: types.Span{Begin: 0, End: int32(len([]rune(text))), Text: &text},
	}
	require.NoError(t, tokenizer.NewTokenizer()(sent))
	for i, token := range sent.Tokens {
		if strings.EqualFold(*token.Text, keyword) {
			return types.AspectMention{
				Span:       token.Span,
				Aspect:     "aspect",
				Keyword:    keyword,
				TokenBegin: i,
				TokenEnd:   i,
				Sentence:   sent,
			}
		}
	}
	t.Fatalf("keyword %q not found in %q", keyword, text)
	return types.AspectMention{}
}

func TestNegationAnalyzer(t *testing.T) {
	analyzer := NewNegationAnalyzer(DefaultMaxLeftScopeSize, DefaultMaxRightScopeSize, GetDefaultBoundaries())

	cases := []struct {
		name     string
		text     string
		keyword  string
		expected bool
	}{
		{"auxiliary and particle on the right", "The screen is not bright.", "screen", true},
		{"contraction on the left", "I don't like the screen.", "screen", true},
		{"no cue", "The screen is bright.", "screen", false},
		{"not only", "Not only the screen is great.", "screen", false},
		{"negative determiner", "No scratches on the screen.", "screen", true},
		{"free of", "The case is free of scratches.", "scratches", true},
		{"negative verb", "The charger failed twice.", "charger", true},
		{"boundary stops the scope", "The screen is great but the battery is not.", "screen", false},
		{"cue after the boundary", "The screen is great but the battery is not.", "battery", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mention := mentionOf(t, c.text, c.keyword)
			negated, err := analyzer([]types.AspectMention{mention}, DefaultScopes())
			require.NoError(t, err)
			require.Equal(t, []bool{c.expected}, negated)
		})
	}
}

func TestNegationAnalyzerScopes(t *testing.T) {
	analyzer := NewNegationAnalyzer(DefaultMaxLeftScopeSize, DefaultMaxRightScopeSize, GetDefaultBoundaries())
	mention := mentionOf(t, "The screen is not bright.", "screen")

	negated, err := analyzer([]types.AspectMention{mention}, []Scope{ScopeLeft})
	require.NoError(t, err)
	require.Equal(t, []bool{false}, negated)

	_, err = analyzer([]types.AspectMention{mention}, []Scope{"middle"})
	require.Equal(t, ErrUnsupportedScope, err)

	mention.Sentence = nil
	_, err = analyzer([]types.AspectMention{mention}, DefaultScopes())
	require.Equal(t, ErrNilSentence, err)
}

func TestScopeFromSpan(t *testing.T) {
	mention := mentionOf(t, "I never liked this keyboard.", "keyboard")
	mention.TokenBegin, mention.TokenEnd = 0, 0

	begin, end := mentionTokens(mention.Sentence.Tokens, mention)
	require.Equal(t, 4, begin)
	require.Equal(t, 4, end)

	// "I" is a boundary, the cue sits inside the scope
	negated, err := NewNegationAnalyzer(3, 3, GetDefaultBoundaries())([]types.AspectMention{mention}, DefaultScopes())
	require.NoError(t, err)
	require.Equal(t, []bool{true}, negated)
}
