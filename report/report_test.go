package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

func summaries() []types.AspectSummary {
	return []types.AspectSummary{
		{
			Aspect: "Food", Mentions: 2, Neg: 0.25, Neu: 0.5, Pos: 0.25,
			Compound: -0.1, CompoundStdDev: 0.2, PositiveShare: 0.5, NegativeShare: 0.5,
			Label: "negative",
		},
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, summaries(), FormatCSV))

	expected := "ASPECT,MENTIONS,NEG,NEU,POS,COMPOUND,STD,POSITIVE,NEGATIVE,NEUTRAL,LABEL\n" +
		"Food,2,0.25,0.5,0.25,-0.1,0.2,0.5,0.5,0,negative\n"
	require.Equal(t, expected, buf.String())
}

func TestWriteSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, summaries(), FormatJSON))

	expected := `[{"aspect": "Food", "mentions": 2, "neg": 0.25, "neu": 0.5, "pos": 0.25,
		"compound": -0.1, "compound_std": 0.2, "positive_share": 0.5,
		"negative_share": 0.5, "neutral_share": 0, "label": "negative"}]`
	require.True(t, jsonpatch.Equal([]byte(expected), buf.Bytes()), buf.String())
}

func TestWriteTokensTable(t *testing.T) {
	rows := []types.TokenRow{
		{Text: "Screens", Lemma: "screen", Pos: "NOUN", Tag: "NNS", Dep: "nsubj", Head: 1, Shape: "Xxxxx", IsAlpha: true},
		{Text: "\n", Pos: "SPACE", Tag: "_SP", Shape: "\n"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTokens(&buf, rows, FormatTable))

	out := buf.String()
	for _, value := range []string{"TEXT", "LEMMA", "Screens", "screen", "NNS", "nsubj", "Xxxxx", `\n`} {
		require.True(t, strings.Contains(out, value), value)
	}
}

func TestWriteMentionsCSV(t *testing.T) {
	negated := true
	sections := []types.MentionSection{
		{
			Aspect:    "Screen",
			Keyword:   "screen",
			Text:      []interface{}{"screen", int32(4), int32(10)},
			Clause:    []interface{}{"The screen is not bright", int32(0), int32(24)},
			Sentiment: types.Sentiment{Neg: 0.4, Neu: 0.6, Compound: -0.3412},
			Label:     "negative",
			Negated:   &negated,
		},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteMentions(&buf, sections, FormatCSV))
	require.Equal(t,
		"ASPECT,KEYWORD,CLAUSE,NEG,NEU,POS,COMPOUND,LABEL,NEGATED\n"+
			"Screen,screen,The screen is not bright,0.4,0.6,0,-0.3412,negative,true\n",
		buf.String())

	buf.Reset()
	require.NoError(t, WriteMentions(&buf, sections, FormatJSON))
	var decoded []types.MentionSection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "Screen", decoded[0].Aspect)
}

func TestWriteSentencesTable(t *testing.T) {
	scores := []types.SentenceScore{
		{Sentence: []int32{0, 12}, Text: "Great phone.", Sentiment: types.Sentiment{Neu: 0.2, Pos: 0.8, Compound: 0.6249}, Label: "positive"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSentences(&buf, scores, FormatTable))
	require.True(t, strings.Contains(buf.String(), "Great phone."))
	require.True(t, strings.Contains(buf.String(), "0.6249"))
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, summaries(), "xml")
	require.True(t, errors.Is(err, ErrFormat))
	require.True(t, errors.Is(CheckFormat("yaml"), ErrFormat))
	require.NoError(t, CheckFormat(FormatCSV))
}
