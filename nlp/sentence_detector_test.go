package nlp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

func TestSentenceSplitter(t *testing.T) {
	split, err := NewSentenceSplitter("")
	require.NoError(t, err)

	text := "The battery is great. The screen is dim!\n\nShipping took forever"
	sents := split(text)

	var got []string
	for _, sent := range sents {
		got = append(got, *sent.Text)
	}
	expected := []string{"The battery is great.", "The screen is dim!", "Shipping took forever"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("sentences mismatch (-want +got):\n%s", diff)
	}

	runes := []rune(text)
	for _, sent := range sents {
		require.Equal(t, *sent.Text, string(runes[sent.Begin:sent.End]))
	}
}

func TestSentenceSplitterRuneOffsets(t *testing.T) {
	split, err := NewSentenceSplitter("")
	require.NoError(t, err)

	text := "Le café était froid. The crème brûlée was perfect."
	sents := split(text)
	require.Len(t, sents, 2)

	runes := []rune(text)
	for _, sent := range sents {
		require.Equal(t, *sent.Text, string(runes[sent.Begin:sent.End]))
	}
}

func TestSentenceDetectorStage(t *testing.T) {
	detect, err := NewSentenceDetector("")
	require.NoError(t, err)

	in := make(chan string, 2)
	in <- "Fast delivery. Cheap price."
	in <- ""
	close(in)

	var sents []types.Sentence
	for sent := range detect(in) {
		sents = append(sents, sent)
	}
	require.Len(t, sents, 2)
	require.Equal(t, int32(15), sents[1].Begin)
}
