package aspects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/lookup"
	"text2phenotype.com/absa/pos"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

// taggedDocument tokenizes text as one sentence, applies the given tags and
// parses it with the heuristic parser.
func taggedDocument(t *testing.T, text string, tags []string) *types.Document {
	t.Helper()
	sent := &types.Sentence{
		Span: types.Span{Begin: 0, End: int32(len([]rune(text))), Text: &text},
	}
	require.NoError(t, tokenizer.NewTokenizer()(sent))
	require.Equal(t, len(tags), len(sent.Tokens))

	store := utils.GlobalStringStore()
	for i, token := range sent.Tokens {
		token.Tag = pos.TagPointer(tags[i])
		token.Pos = pos.UniversalFor(tags[i], token.Lower())
		token.Lemma = store.GetPointer(token.Lower())
	}
	dependency.NewHeuristicParser(nil)(sent)
	return &types.Document{Text: text, Sentences: []*types.Sentence{sent}}
}

func productConfig(features ...string) types.Configuration {
	return types.Configuration{
		Name:     "product",
		Pipeline: types.AspectSentimentPipeline,
		Features: features,
		Aspects: map[string][]string{
			"Battery": {"battery", "battery life"},
			"Screen":  {"screen", "display"},
			"Price":   {"price"},
		},
		Params: types.ParamsConfig{
			Lookup: types.LookupConfig{PrecisionMode: true},
		},
	}
}

func newExtractor(t *testing.T, cfg types.Configuration) *Extractor {
	t.Helper()
	dict, err := lookup.CreateDictionary(cfg, "", "")
	require.NoError(t, err)
	lexicon, err := sentiment.DefaultLexicon()
	require.NoError(t, err)
	return NewExtractor(cfg, dict, sentiment.NewAnalyzer(lexicon), GetDefaultExtractorParams())
}

type scored struct {
	Aspect  string
	Keyword string
	Text    string
	Clause  string
	Label   string
}

func summarizeMentions(mentions []types.AspectMention) []scored {
	result := make([]scored, len(mentions))
	for i, m := range mentions {
		result[i] = scored{
			Aspect:  m.Aspect,
			Keyword: m.Keyword,
			Text:    *m.Text,
			Clause:  *m.Clause.Text,
			Label:   m.Sentiment.Label(),
		}
	}
	return result
}

func TestExtractCoordinatedClauses(t *testing.T) {
	doc := taggedDocument(t,
		"The battery life is great, but the screen is dim.",
		[]string{"DT", "NN", "NN", "VBZ", "JJ", ",", "CC", "DT", "NN", "VBZ", "JJ", "."},
	)
	extractor := newExtractor(t, productConfig())

	mentions, err := extractor.Extract(doc)
	require.NoError(t, err)

	expected := []scored{
		{Aspect: "Battery", Keyword: "battery life", Text: "battery life", Clause: "The battery life is great", Label: "positive"},
		{Aspect: "Screen", Keyword: "screen", Text: "screen", Clause: "the screen is dim", Label: "neutral"},
	}
	if diff := cmp.Diff(expected, summarizeMentions(mentions)); diff != "" {
		t.Fatalf("mentions mismatch (-want +got):\n%s", diff)
	}
	require.InDelta(t, 0.6249, mentions[0].Sentiment.Compound, 1e-9)
	require.Equal(t, 2, KeywordHead(&mentions[0]))
	require.Equal(t, int32(0), mentions[0].Clause.Begin)
	require.Equal(t, int32(25), mentions[0].Clause.End)
	require.False(t, mentions[1].Negated)
}

func TestExtractWithoutIsolation(t *testing.T) {
	cfg := productConfig()
	isolate := false
	cfg.Params.IsolateClauses = &isolate

	doc := taggedDocument(t,
		"The battery life is great, but the screen is dim.",
		[]string{"DT", "NN", "NN", "VBZ", "JJ", ",", "CC", "DT", "NN", "VBZ", "JJ", "."},
	)
	mentions, err := newExtractor(t, cfg).Extract(doc)
	require.NoError(t, err)
	require.Len(t, mentions, 2)
	require.Equal(t, "but the screen is dim", *mentions[1].Clause.Text)
}

func TestExtractNegation(t *testing.T) {
	doc := taggedDocument(t,
		"The screen is not bright.",
		[]string{"DT", "NN", "VBZ", "RB", "JJ", "."},
	)

	mentions, err := newExtractor(t, productConfig(types.NegationFeature)).Extract(doc)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	require.True(t, mentions[0].Negated)
	require.Equal(t, true, mentions[0].Attributes[NegatedAttribute])
	require.Equal(t, "negative", mentions[0].Sentiment.Label())
	require.InDelta(t, -0.3412, mentions[0].Sentiment.Compound, 1e-9)

	// without the feature the flag stays unset
	doc = taggedDocument(t,
		"The screen is not bright.",
		[]string{"DT", "NN", "VBZ", "RB", "JJ", "."},
	)
	mentions, err = newExtractor(t, productConfig()).Extract(doc)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	require.False(t, mentions[0].Negated)
	_, ok := mentions[0].Attributes[NegatedAttribute]
	require.False(t, ok)
}

func TestKeywordHeadOutOfRange(t *testing.T) {
	doc := taggedDocument(t, "Great screen.", []string{"JJ", "NN", "."})
	mention := types.AspectMention{Sentence: doc.Sentences[0], TokenBegin: 2, TokenEnd: 5}
	require.Equal(t, -1, KeywordHead(&mention))
}

func TestScoreSentences(t *testing.T) {
	doc := taggedDocument(t, "The screen is terrible.", []string{"DT", "NN", "VBZ", "JJ", "."})
	lexicon, err := sentiment.DefaultLexicon()
	require.NoError(t, err)

	scores := ScoreSentences(doc, sentiment.NewAnalyzer(lexicon))
	require.Len(t, scores, 1)
	require.Equal(t, []int32{0, 23}, scores[0].Sentence)
	require.Equal(t, "negative", scores[0].Label)
	require.NotNil(t, doc.Sentences[0].Attributes.Sentiment)
	require.Equal(t, scores[0].Sentiment, *doc.Sentences[0].Attributes.Sentiment)
}

func mention(aspect string, compound float64, neg float64, neu float64, pos float64) types.AspectMention {
	return types.AspectMention{
		Aspect:    aspect,
		Sentiment: types.Sentiment{Neg: neg, Neu: neu, Pos: pos, Compound: compound},
	}
}

func TestAggregate(t *testing.T) {
	mentions := []types.AspectMention{
		mention("Screen", 0.6, 0, 0.5, 0.5),
		mention("Battery", -0.4, 0.4, 0.6, 0),
		mention("Screen", -0.2, 0.3, 0.7, 0),
		mention("Screen", 0, 0, 1, 0),
	}

	summaries := Aggregate(mentions, []string{"Battery", "Price", "Screen"}, false)
	require.Len(t, summaries, 2)

	battery := summaries[0]
	require.Equal(t, "Battery", battery.Aspect)
	require.Equal(t, 1, battery.Mentions)
	require.InDelta(t, -0.4, battery.Compound, 1e-9)
	require.Equal(t, 0.0, battery.CompoundStdDev)
	require.InDelta(t, 1.0, battery.NegativeShare, 1e-9)
	require.Equal(t, "negative", battery.Label)

	screen := summaries[1]
	require.Equal(t, "Screen", screen.Aspect)
	require.Equal(t, 3, screen.Mentions)
	require.InDelta(t, 0.1333, screen.Compound, 1e-9)
	// sample standard deviation of 0.6, -0.2, 0
	require.InDelta(t, 0.4163, screen.CompoundStdDev, 1e-9)
	require.InDelta(t, 0.1, screen.Neg, 1e-9)
	require.InDelta(t, 0.733, screen.Neu, 1e-9)
	require.InDelta(t, 0.167, screen.Pos, 1e-9)
	require.InDelta(t, 0.333, screen.PositiveShare, 1e-9)
	require.InDelta(t, 0.333, screen.NegativeShare, 1e-9)
	require.InDelta(t, 0.333, screen.NeutralShare, 1e-9)
	require.Equal(t, "positive", screen.Label)
}

func TestAggregateIncludeEmpty(t *testing.T) {
	summaries := Aggregate([]types.AspectMention{mention("Screen", 0.5, 0, 0.5, 0.5)}, []string{"Price", "Screen"}, true)

	expected := []types.AspectSummary{
		{Aspect: "Price", Label: "neutral"},
		{
			Aspect: "Screen", Mentions: 1, Neu: 0.5, Pos: 0.5, Compound: 0.5,
			PositiveShare: 1, Label: "positive",
		},
	}
	if diff := cmp.Diff(expected, summaries); diff != "" {
		t.Fatalf("summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryKeepsAspectsWithoutKeywords(t *testing.T) {
	cfg := productConfig()
	cfg.Aspects["Warranty"] = []string{"", "  "}
	cfg.Params.IncludeEmpty = true
	extractor := newExtractor(t, cfg)

	require.Equal(t, []string{"Battery", "Price", "Screen", "Warranty"}, extractor.Aspects())

	response := extractor.BuildResponse(nil, nil)
	names := make([]string, 0, len(response.Summary))
	for _, summary := range response.Summary {
		require.Equal(t, 0, summary.Mentions)
		names = append(names, summary.Aspect)
	}
	require.Equal(t, []string{"Battery", "Price", "Screen", "Warranty"}, names)
}
