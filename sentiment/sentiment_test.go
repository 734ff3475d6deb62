package sentiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	lexicon, err := DefaultLexicon()
	require.NoError(t, err)
	return NewAnalyzer(lexicon)
}

func TestPolarityScores(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	cases := []struct {
		name     string
		text     string
		expected types.Sentiment
	}{
		{"negative word", "The battery is terrible.", types.Sentiment{Neg: 0.508, Neu: 0.492, Pos: 0, Compound: -0.4767}},
		{"positive word", "The food is good.", types.Sentiment{Neg: 0, Neu: 0.508, Pos: 0.492, Compound: 0.4404}},
		{"contrastive but", "The food is good but the service is terrible.", types.Sentiment{Neg: 0.317, Neu: 0.534, Pos: 0.149, Compound: -0.4939}},
		{"empty", "", types.Sentiment{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, analyzer.PolarityScores(c.text))
		})
	}
}

func TestCompoundModifiers(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	cases := []struct {
		name     string
		text     string
		compound float64
	}{
		{"booster", "The food is very good.", 0.4927},
		{"negation", "The food is not good.", -0.3412},
		{"all caps", "The food is GOOD.", 0.5622},
		{"kind of", "The screen is kind of nice.", 0.3626},
		{"least", "This is the least useful feature.", -0.3412},
		{"no lexicon words", "The screen is dim.", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.compound, analyzer.PolarityScores(c.text).Compound)
		})
	}

	require.Equal(t, "neutral", analyzer.PolarityScores("The screen is dim.").Label())
	require.Equal(t, "negative", analyzer.PolarityScores("The battery is terrible.").Label())
}

func TestBoosterBeforeBut(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	good := analyzer.lexicon.Words["good"]
	bad := analyzer.lexicon.Words["bad"]

	// the booster lifts "good" first, then "but" halves the lifted valence
	text := "very good but bad"
	expected := scoreValence([]float64{0, (good + BIncr) * butBefore, 0, bad * butAfter}, text)
	require.Equal(t, expected, analyzer.PolarityScores(text))
}

func TestPunctuationEmphasis(t *testing.T) {
	require.InDelta(t, 0.292, punctuationEmphasis("good!"), 1e-9)
	require.InDelta(t, 1.168, punctuationEmphasis("good!!!!!!"), 1e-9)
	require.InDelta(t, 0.0, punctuationEmphasis("good?"), 1e-9)
	require.InDelta(t, 0.36, punctuationEmphasis("good??"), 1e-9)
	require.InDelta(t, 0.96, punctuationEmphasis("good????"), 1e-9)
}

func TestNormalize(t *testing.T) {
	require.InDelta(t, 0.0, Normalize(0), 1e-12)
	require.True(t, Normalize(1000) < 1)
	require.True(t, Normalize(-1000) > -1)
	require.InDelta(t, -Normalize(2.5), Normalize(-2.5), 1e-12)
}

func TestSentiText(t *testing.T) {
	st := newSentiText("I LOVE it, :) ok...")
	require.Equal(t, []string{"I", "LOVE", "it,", ":)", "ok..."}, st.words)
	require.True(t, st.isCapDiff)

	st = newSentiText("wonderful!!! battery")
	require.Equal(t, []string{"wonderful", "battery"}, st.words)
	require.False(t, st.isCapDiff)

	require.Equal(t, "great thumbs up", replaceEmojis("great👍", map[string]string{"👍": "thumbs up"}))
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte("sluggish\t-1.4\t0.5\t[-1, -2]\nsnappy\t1.6\n"), 0600))

	analyzer, err := NewAnalyzerFromPath(path)
	require.NoError(t, err)
	require.True(t, analyzer.PolarityScores("The app is snappy.").Compound > 0)
	require.True(t, analyzer.PolarityScores("The app is sluggish.").Compound < 0)

	_, err = ReadLexicon(strings.NewReader("word\tnot-a-number\n"))
	require.Error(t, err)
	_, err = ReadLexicon(strings.NewReader("no tabs here\n"))
	require.Error(t, err)

	_, err = NewAnalyzerFromPath(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
