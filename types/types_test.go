package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetShape(t *testing.T) {
	cases := map[string]string{
		"Apple":   "Xxxxx",
		"battery": "xxxx",
		"U.S.":    "X.X.",
		"1999":    "dddd",
		"C3PO":    "XdXX",
		"n't":     "x'x",
		"":        "",
	}
	for in, expected := range cases {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, expected, GetShape(in))
		})
	}
}

func TestIsTitleAndAlpha(t *testing.T) {
	require.True(t, IsTitle("Battery"))
	require.True(t, IsTitle("New York"))
	require.False(t, IsTitle("BATTERY"))
	require.False(t, IsTitle("battery"))
	require.False(t, IsTitle("123"))

	require.True(t, IsAlpha("screen"))
	require.False(t, IsAlpha("n't"))
	require.False(t, IsAlpha(""))
}

func TestSentimentLabel(t *testing.T) {
	require.Equal(t, "positive", Sentiment{Compound: 0.05}.Label())
	require.Equal(t, "negative", Sentiment{Compound: -0.05}.Label())
	require.Equal(t, "neutral", Sentiment{Compound: 0.0499}.Label())
}

func TestSpanText(t *testing.T) {
	text := "Great screen."
	sent := &Sentence{Span: Span{Begin: 10, End: 23, Text: &text}}
	got, ok := Span{Begin: 16, End: 22}.GetTextFromSentence(sent)
	require.True(t, ok)
	require.Equal(t, "screen", got)

	_, ok = Span{Begin: 5, End: 12}.GetTextFromSentence(sent)
	require.False(t, ok)
}

func TestLoadConfigurations(t *testing.T) {
	dir := t.TempDir()
	good := `pipeline: aspect_sentiment
features: [negation]
aspects:
  battery: [battery, charge]
  screen: [screen, display]
params:
  lookup:
    match_mode: both
    exclusion_tags: [DT]
  isolate_clauses: false
`
	bad := `pipeline: smoking_status
aspects:
  battery: [battery]
`
	tokens := `pipeline: token_attributes
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reviews.yaml"), []byte(good), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens.yml"), []byte(tokens), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	configs, err := LoadConfigurations(dir)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	reviews := configs[0]
	require.Equal(t, "reviews", reviews.Name)
	require.True(t, reviews.CheckFeature(NegationFeature))
	require.False(t, reviews.IsolateClauses())
	require.Equal(t, MatchModeBoth, reviews.Params.Lookup.GetMatchMode())
	if diff := cmp.Diff([]string{"battery", "screen"}, reviews.AspectNames()); diff != "" {
		t.Fatalf("aspect names mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, "tokens", configs[1].Name)
	require.True(t, configs[1].IsolateClauses())
}

func TestValidate(t *testing.T) {
	cfg := Configuration{Name: "x", Pipeline: AspectSentimentPipeline}
	require.True(t, errors.Is(cfg.Validate(), ErrNoAspects))

	cfg.Aspects = map[string][]string{"food": {"food"}}
	cfg.Params.Lookup.MatchMode = "fuzzy"
	require.True(t, errors.Is(cfg.Validate(), ErrMatchMode))

	cfg.Params.Lookup.MatchMode = "Substring"
	require.NoError(t, cfg.Validate())
}
