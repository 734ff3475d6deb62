package aspects

import (
	"sort"

	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/lookup"
	"text2phenotype.com/absa/negation"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/types"
)

const NegatedAttribute = "negated"

type ExtractorParams struct {
	MaxLeftScopeSize  int              `json:"max_left_scope_size"`
	MaxRightScopeSize int              `json:"max_right_scope_size"`
	Scopes            []negation.Scope `json:"scopes"`
}

func GetDefaultExtractorParams() ExtractorParams {
	return ExtractorParams{
		MaxLeftScopeSize:  negation.DefaultMaxLeftScopeSize,
		MaxRightScopeSize: negation.DefaultMaxRightScopeSize,
		Scopes:            negation.DefaultScopes(),
	}
}

// Extractor finds the aspect mentions of one configuration and scores the
// clause around each of them.
type Extractor struct {
	Config   types.Configuration
	dict     *lookup.Dictionary
	match    lookup.MatchParams
	negation negation.NegationAnalyzer
	scopes   []negation.Scope
	scorer   *sentiment.Analyzer
}

func NewExtractor(cfg types.Configuration, dict *lookup.Dictionary, scorer *sentiment.Analyzer, params ExtractorParams) *Extractor {
	return &Extractor{
		Config: cfg,
		dict:   dict,
		match:  lookup.MatchParamsFromConfig(cfg),
		negation: negation.NewNegationAnalyzer(
			params.MaxLeftScopeSize,
			params.MaxRightScopeSize,
			negation.GetDefaultBoundaries()),
		scopes: params.Scopes,
		scorer: scorer,
	}
}

// Extract returns the scored mentions of every sentence in document order.
func (extractor *Extractor) Extract(doc *types.Document) ([]types.AspectMention, error) {
	var mentions []types.AspectMention
	for _, sent := range doc.Sentences {
		found, err := extractor.ExtractSentence(sent)
		if err != nil {
			return nil, err
		}
		mentions = append(mentions, found...)
	}
	return mentions, nil
}

func (extractor *Extractor) ExtractSentence(sent *types.Sentence) ([]types.AspectMention, error) {
	mentions := extractor.Lookup(sent)
	if extractor.Config.CheckFeature(types.NegationFeature) {
		if err := extractor.DetectNegation(mentions); err != nil {
			return nil, err
		}
	}
	extractor.Score(mentions)
	return mentions, nil
}

func (extractor *Extractor) Lookup(sent *types.Sentence) []types.AspectMention {
	return extractor.dict.Search(sent, extractor.match)
}

// DetectNegation sets Negated and the negated attribute on every mention.
func (extractor *Extractor) DetectNegation(mentions []types.AspectMention) error {
	if len(mentions) == 0 {
		return nil
	}
	negated, err := extractor.negation(mentions, extractor.scopes)
	if err != nil {
		return err
	}
	for i := range mentions {
		mentions[i].Negated = negated[i]
		if mentions[i].Attributes == nil {
			mentions[i].Attributes = make(map[string]interface{})
		}
		mentions[i].Attributes[NegatedAttribute] = negated[i]
	}
	return nil
}

// Score fills the governing clause and its sentiment.
func (extractor *Extractor) Score(mentions []types.AspectMention) {
	isolate := extractor.Config.IsolateClauses()
	for i := range mentions {
		mention := &mentions[i]
		if mention.Sentence == nil {
			continue
		}
		mention.Clause = dependency.GoverningClause(mention.Sentence, KeywordHead(mention), isolate)
		text := ""
		if mention.Clause.Text != nil {
			text = *mention.Clause.Text
		}
		mention.Sentiment = extractor.scorer.PolarityScores(text)
	}
}

// KeywordHead is the keyword token whose head lies outside the keyword.
func KeywordHead(mention *types.AspectMention) int {
	tokens := mention.Sentence.Tokens
	begin, end := mention.TokenBegin, mention.TokenEnd
	if begin < 0 || end >= len(tokens) || begin > end {
		return -1
	}
	for idx := begin; idx <= end; idx++ {
		head := tokens[idx].Head
		if head == idx || head < begin || head > end {
			return idx
		}
	}
	return end
}

// ScoreSentences scores every sentence of the document as a whole.
func ScoreSentences(doc *types.Document, scorer *sentiment.Analyzer) []types.SentenceScore {
	scores := make([]types.SentenceScore, 0, len(doc.Sentences))
	for _, sent := range doc.Sentences {
		scores = append(scores, ScoreSentence(sent, scorer))
	}
	return scores
}

func ScoreSentence(sent *types.Sentence, scorer *sentiment.Analyzer) types.SentenceScore {
	text := ""
	if sent.Text != nil {
		text = *sent.Text
	}
	score := scorer.PolarityScores(text)
	sent.Attributes.Sentiment = &score
	return types.SentenceScore{
		Sentence:  []int32{sent.Begin, sent.End},
		Text:      text,
		Sentiment: score,
		Label:     score.Label(),
	}
}

// SortMentions orders mentions by position, then by aspect.
func SortMentions(mentions []types.AspectMention) {
	sort.SliceStable(mentions, func(i, j int) bool {
		if mentions[i].Begin != mentions[j].Begin {
			return mentions[i].Begin < mentions[j].Begin
		}
		if mentions[i].End != mentions[j].End {
			return mentions[i].End < mentions[j].End
		}
		return mentions[i].Aspect < mentions[j].Aspect
	})
}

// Aspects lists every configured aspect in sorted order: the inline aspect
// names, even those without a usable keyword, and the aspects of the
// keyword file.
func (extractor *Extractor) Aspects() []string {
	names := extractor.Config.AspectNames()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, name := range extractor.dict.Aspects() {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (extractor *Extractor) ScoreSentence(sent *types.Sentence) types.SentenceScore {
	return ScoreSentence(sent, extractor.scorer)
}
