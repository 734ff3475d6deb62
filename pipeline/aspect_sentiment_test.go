package pipeline

import (
	"encoding/json"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

const foodParse = `{"tokens": [
	[
		{"id": 0, "head": 1, "pos": "DET", "tag": "DT", "dep": "det", "idx": 0, "text": "The", "lemma": "the"},
		{"id": 1, "head": 2, "pos": "NOUN", "tag": "NN", "dep": "nsubj", "idx": 4, "text": "food", "lemma": "food"},
		{"id": 2, "head": 2, "pos": "AUX", "tag": "VBD", "dep": "ROOT", "idx": 9, "text": "was", "lemma": "be"},
		{"id": 3, "head": 2, "pos": "ADJ", "tag": "JJ", "dep": "acomp", "idx": 13, "text": "awful", "lemma": "awful"},
		{"id": 4, "head": 2, "pos": "PUNCT", "tag": ".", "dep": "punct", "idx": 18, "text": ".", "lemma": "."}
	]
]}`

const expectedReviews = `{
	"content": [
		{
			"id": 0,
			"aspect": "Food",
			"keyword": "food",
			"text": ["food", 4, 8],
			"sentence": [0, 19],
			"clause": ["The food was awful", 0, 18],
			"sentiment": {"neg": 0.5, "neu": 0.5, "pos": 0, "compound": -0.4588},
			"label": "negative",
			"negated": false
		}
	],
	"summary": [
		{
			"aspect": "Food",
			"mentions": 1,
			"neg": 0.5,
			"neu": 0.5,
			"pos": 0,
			"compound": -0.4588,
			"compound_std": 0,
			"positive_share": 0,
			"negative_share": 1,
			"neutral_share": 0,
			"label": "negative"
		},
		{
			"aspect": "Service",
			"mentions": 0,
			"neg": 0,
			"neu": 0,
			"pos": 0,
			"compound": 0,
			"compound_std": 0,
			"positive_share": 0,
			"negative_share": 0,
			"neutral_share": 0,
			"label": "neutral"
		}
	],
	"sentences": [
		{
			"sentence": [0, 19],
			"text": "The food was awful.",
			"sentiment": {"neg": 0.5, "neu": 0.5, "pos": 0, "compound": -0.4588},
			"label": "negative"
		}
	]
}`

func testConfigurations() []types.Configuration {
	return []types.Configuration{
		{
			Name:     "reviews",
			Pipeline: types.AspectSentimentPipeline,
			Features: []string{types.NegationFeature, types.SentenceScoresFeature},
			Aspects: map[string][]string{
				"Food":    {"food", "dish"},
				"Service": {"waiter", "service"},
			},
			Params: types.ParamsConfig{IncludeEmpty: true},
		},
		{
			Name:     "tokens",
			Pipeline: types.TokenAttributesPipeline,
		},
	}
}

func runPipeline(t *testing.T, request Request) map[string]json.RawMessage {
	t.Helper()
	ppln, err := AspectSentiment(GetDefaultParams("", "", testConfigurations()))
	require.NoError(t, err)

	response := make(map[string]json.RawMessage)
	require.NoError(t, json.Unmarshal([]byte(<-ppln(request)), &response))
	return response
}

func TestAspectSentimentWithExternalParse(t *testing.T) {
	response := runPipeline(t, Request{
		Text:  "The food was awful.",
		Tid:   "test",
		Parse: foodParse,
	})
	require.Len(t, response, 2)

	if !jsonpatch.Equal([]byte(expectedReviews), response["reviews"]) {
		t.Fatalf("unexpected response: %s", response["reviews"])
	}

	type row struct {
		Text  string
		Lemma string
		Tag   string
		Dep   string
		Head  int
		Shape string
	}
	var tokens types.TokenAttributesResponse
	require.NoError(t, json.Unmarshal(response["tokens"], &tokens))
	rows := make([]row, len(tokens.Tokens))
	for i, token := range tokens.Tokens {
		rows[i] = row{token.Text, token.Lemma, token.Tag, token.Dep, token.Head, token.Shape}
	}
	expected := []row{
		{"The", "the", "DT", "det", 1, "Xxx"},
		{"food", "food", "NN", "nsubj", 2, "xxxx"},
		{"was", "be", "VBD", "ROOT", 2, "xxx"},
		{"awful", "awful", "JJ", "acomp", 2, "xxxx"},
		{".", ".", ".", "punct", 2, "."},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Fatalf("token rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAspectSentimentHeuristicParse(t *testing.T) {
	response := runPipeline(t, Request{
		Text: "The waiter was rude. I loved the dish!",
		Tid:  "test",
	})

	var reviews types.AspectSentimentResponse
	require.NoError(t, json.Unmarshal(response["reviews"], &reviews))
	require.Len(t, reviews.Content, 2)
	require.Len(t, reviews.Sentences, 2)

	service, food := reviews.Content[0], reviews.Content[1]
	require.Equal(t, "Service", service.Aspect)
	require.Equal(t, []interface{}{"waiter", float64(4), float64(10)}, service.Text)
	require.Equal(t, "negative", service.Label)
	require.Equal(t, "Food", food.Aspect)
	require.Equal(t, "dish", food.Keyword)
	require.Equal(t, "positive", food.Label)

	require.Len(t, reviews.Summary, 2)
	require.Equal(t, "Food", reviews.Summary[0].Aspect)
	require.Equal(t, "Service", reviews.Summary[1].Aspect)
}

func TestAspectSentimentEmptyText(t *testing.T) {
	response := runPipeline(t, Request{Tid: "empty"})

	var reviews types.AspectSentimentResponse
	require.NoError(t, json.Unmarshal(response["reviews"], &reviews))
	require.Empty(t, reviews.Content)
	require.Len(t, reviews.Summary, 2)

	var tokens types.TokenAttributesResponse
	require.NoError(t, json.Unmarshal(response["tokens"], &tokens))
	require.Empty(t, tokens.Tokens)
}

func TestRequestExternalParse(t *testing.T) {
	parse, err := Request{}.ExternalParse()
	require.NoError(t, err)
	require.Nil(t, parse)

	parse, err = Request{Parse: foodParse}.ExternalParse()
	require.NoError(t, err)
	require.Len(t, parse.Tokens, 5)

	conllu := "1\tGood\tgood\tADJ\tJJ\t_\t2\tamod\t_\t_\n2\tfood\tfood\tNOUN\tNN\t_\t0\troot\t_\t_\n"
	parse, err = Request{Parse: conllu}.ExternalParse()
	require.NoError(t, err)
	require.Len(t, parse.Tokens, 2)
	require.Equal(t, "amod", parse.Tokens[0].Dep)
}
