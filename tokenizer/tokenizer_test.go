package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

func newSentence(text string, begin int32) *types.Sentence {
	return &types.Sentence{
		Span: types.Span{Begin: begin, End: begin + int32(len([]rune(text))), Text: &text},
	}
}

func texts(sent *types.Sentence) []string {
	result := make([]string, len(sent.Tokens))
	for i, token := range sent.Tokens {
		result[i] = *token.Text
	}
	return result
}

func TestTokenizer(t *testing.T) {
	tokenize := NewTokenizer()
	sent := newSentence("The battery life is great, but the screen is dim.", 0)
	require.NoError(t, tokenize(sent))

	expected := []string{"The", "battery", "life", "is", "great", ",", "but", "the", "screen", "is", "dim", "."}
	if diff := cmp.Diff(expected, texts(sent)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	comma := sent.Tokens[5]
	require.True(t, comma.IsPunct)
	require.False(t, comma.IsWord)

	the := sent.Tokens[0]
	require.True(t, the.IsTitle)
	require.True(t, the.IsAlpha)
	require.True(t, the.IsStop)
	require.Equal(t, "Xxx", the.Shape)

	battery := sent.Tokens[1]
	require.False(t, battery.IsStop)
	require.Equal(t, 1, battery.Index)
	require.Equal(t, 1, battery.Head)
}

func TestTokenizerOffsets(t *testing.T) {
	tokenize := NewTokenizer()
	doc := []rune(`Intro. I can't say the "battery" is bad.`)
	sentText := string(doc[7:])
	sent := newSentence(sentText, 7)
	require.NoError(t, tokenize(sent))

	for _, token := range sent.Tokens {
		require.Equal(t, string(doc[token.Begin:token.End]), *token.Text)
	}

	all := texts(sent)
	require.Contains(t, all, "n't")
	require.Contains(t, all, `"`)
	require.Contains(t, all, "battery")
}

func TestTokenizerNewlines(t *testing.T) {
	tokenize := NewTokenizer()
	sent := newSentence("Screen is\nbright", 0)
	require.NoError(t, tokenize(sent))

	expected := []string{"Screen", "is", "\n", "bright"}
	if diff := cmp.Diff(expected, texts(sent)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	require.True(t, sent.Tokens[2].IsNewline)
	require.Equal(t, int32(10), sent.Tokens[3].Begin)
}

func TestIsStopWord(t *testing.T) {
	require.True(t, IsStopWord("the"))
	require.True(t, IsStopWord("The"))
	require.True(t, IsStopWord("About"))
	require.True(t, IsStopWord("N'T"))
	require.True(t, IsStopWord("n't"))
	require.False(t, IsStopWord("screen"))
}
