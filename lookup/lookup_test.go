package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

func analysedSentence(t *testing.T, text string, lemmas map[string]string) *types.Sentence {
	t.Helper()
	sent := &types.Sentence{
		Span: types.Span{Begin: 0, End: int32(len([]rune(text))), Text: &text},
	}
	require.NoError(t, tokenizer.NewTokenizer()(sent))
	store := utils.GlobalStringStore()
	for _, token := range sent.Tokens {
		lemma := token.Lower()
		if override, ok := lemmas[lemma]; ok {
			lemma = override
		}
		token.Lemma = store.GetPointer(lemma)
	}
	return sent
}

func productConfig() types.Configuration {
	return types.Configuration{
		Name:     "product",
		Pipeline: types.AspectSentimentPipeline,
		Aspects: map[string][]string{
			"Battery": {"battery", "battery life", "charge"},
			"Screen":  {"screen", "display"},
		},
	}
}

type found struct {
	Aspect  string
	Keyword string
	Text    string
}

func summarize(mentions []types.AspectMention) []found {
	result := make([]found, len(mentions))
	for i, m := range mentions {
		result[i] = found{Aspect: m.Aspect, Keyword: m.Keyword, Text: *m.Text}
	}
	return result
}

func TestTermTokenizer(t *testing.T) {
	tokenize := NewTermTokenizer()
	require.Equal(t, []string{"battery", "life"}, tokenize("  Battery   life "))
	require.Equal(t, []string{"phone", "'s", "case"}, tokenize("phone's case"))
	require.Empty(t, tokenize("   "))
}

func TestSearchLemmaMode(t *testing.T) {
	dict, err := CreateDictionary(productConfig(), "", "")
	require.NoError(t, err)
	require.Equal(t, 5, dict.TermCount())
	require.Equal(t, []string{"Battery", "Screen"}, dict.Aspects())

	sent := analysedSentence(t, "The battery life is great, but the screens are dim.", map[string]string{"screens": "screen", "are": "be"})
	mentions := dict.Search(sent, GetDefaultMatchParams())

	require.Equal(t, []found{
		{Aspect: "Battery", Keyword: "battery", Text: "battery"},
		{Aspect: "Battery", Keyword: "battery life", Text: "battery life"},
		{Aspect: "Screen", Keyword: "screen", Text: "screens"},
	}, summarize(mentions))

	life := mentions[1]
	require.Equal(t, 1, life.TokenBegin)
	require.Equal(t, 2, life.TokenEnd)
	require.Equal(t, int32(4), life.Begin)
	require.Equal(t, int32(16), life.End)
	require.Same(t, sent, life.Sentence)
}

func TestSearchPrecisionMode(t *testing.T) {
	dict, err := CreateDictionary(productConfig(), "", "")
	require.NoError(t, err)

	sent := analysedSentence(t, "The battery life is great, but the screen is dim.", nil)
	params := GetDefaultMatchParams()
	params.PrecisionMode = true

	require.Equal(t, []found{
		{Aspect: "Battery", Keyword: "battery life", Text: "battery life"},
		{Aspect: "Screen", Keyword: "screen", Text: "screen"},
	}, summarize(dict.Search(sent, params)))
}

func TestSearchSubstringMode(t *testing.T) {
	dict, err := CreateDictionary(productConfig(), "", "")
	require.NoError(t, err)

	sent := analysedSentence(t, "I recharge it twice a day.", nil)

	params := GetDefaultMatchParams()
	require.Empty(t, dict.Search(sent, params))

	params.MatchMode = types.MatchModeSubstring
	require.Equal(t, []found{
		{Aspect: "Battery", Keyword: "charge", Text: "recharge"},
	}, summarize(dict.Search(sent, params)))

	// multi-token keywords only match whole tokens
	sent = analysedSentence(t, "Battery life rocks.", nil)
	require.Equal(t, []found{
		{Aspect: "Battery", Keyword: "battery", Text: "Battery"},
	}, summarize(dict.Search(sent, params)))

	params.MatchMode = types.MatchModeBoth
	require.Len(t, dict.Search(sent, params), 2)
}

func TestSearchExclusionTags(t *testing.T) {
	dict, err := CreateDictionary(productConfig(), "", "")
	require.NoError(t, err)

	sent := analysedSentence(t, "They display ads.", nil)
	vbp := "VBP"
	sent.Tokens[1].Tag = &vbp

	params := GetDefaultMatchParams()
	require.Len(t, dict.Search(sent, params), 1)

	params.ExclusionTags = []string{"vbp"}
	require.Empty(t, dict.Search(sent, params))
}

func TestSharedKeywordSpan(t *testing.T) {
	cfg := types.Configuration{
		Name: "shared",
		Aspects: map[string][]string{
			"Price": {"cost"},
			"Value": {"cost"},
		},
	}
	dict, err := CreateDictionary(cfg, "", "")
	require.NoError(t, err)

	sent := analysedSentence(t, "The cost is fair.", nil)
	require.Equal(t, []found{
		{Aspect: "Price", Keyword: "cost", Text: "cost"},
		{Aspect: "Value", Keyword: "cost", Text: "cost"},
	}, summarize(dict.Search(sent, GetDefaultMatchParams())))
}

func TestKeywordFileAndIndexCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	bsv := "# aspect keywords\nspeaker|sound\nvolume knob|sound\nspeaker|sound\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sound.bsv"), []byte(bsv), 0600))

	cfg := types.Configuration{
		Name: "audio",
		Params: types.ParamsConfig{Lookup: types.LookupConfig{
			KeywordDictionary: "sound.bsv",
			KeywordScheme:     "keyword|aspect",
		}},
	}

	dict, err := CreateDictionary(cfg, dir, cacheDir)
	require.NoError(t, err)
	require.Equal(t, 2, dict.TermCount())

	cachePath, err := IndexCachePath(cfg, dir, cacheDir)
	require.NoError(t, err)
	_, err = os.Stat(cachePath)
	require.NoError(t, err)

	cached, err := CreateDictionary(cfg, dir, cacheDir)
	require.NoError(t, err)
	require.Equal(t, 2, cached.TermCount())
	require.Equal(t, []string{"sound"}, cached.Aspects())

	sent := analysedSentence(t, "The volume knob feels loose.", nil)
	require.Equal(t, []found{
		{Aspect: "sound", Keyword: "volume knob", Text: "volume knob"},
	}, summarize(cached.Search(sent, GetDefaultMatchParams())))

	path, count, err := BuildIndexCache(cfg, dir, cacheDir)
	require.NoError(t, err)
	require.Equal(t, cachePath, path)
	require.Equal(t, 2, count)
}

func TestKeywordScheme(t *testing.T) {
	_, _, err := schemeColumns("cui|str")
	require.True(t, errors.Is(err, ErrScheme))

	aspectIdx, keywordIdx, err := schemeColumns("")
	require.NoError(t, err)
	require.Equal(t, 0, aspectIdx)
	require.Equal(t, 1, keywordIdx)
}

func TestMapListIterator(t *testing.T) {
	store := utils.GlobalStringStore()
	aspect := "Screen"
	index := KeywordIndex{
		store.GetPointer("screen"): {
			{Tokens: store.GetPointers([]string{"screen"}), Aspect: &aspect, Keyword: "screen"},
			{Tokens: store.GetPointers([]string{"touch", "screen"}), Aspect: &aspect, Keyword: "touch screen", RareWordIndex: 1},
		},
	}
	itr := CreateMapListIterator(index, []*string{store.GetPointer("screen"), store.GetPointer("missing"), store.GetPointer("screen")})

	var keywords []string
	for {
		term, ok := itr()
		if !ok {
			break
		}
		keywords = append(keywords, term.Keyword)
	}
	require.Equal(t, []string{"screen", "touch screen"}, keywords)
}
