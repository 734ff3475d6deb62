package aspects

import (
	"sort"

	"text2phenotype.com/absa/types"
)

// BuildResponse assembles the aspect sentiment response of scored mentions.
// Sentence scores are added when the configuration asks for them.
func (extractor *Extractor) BuildResponse(sentences []*types.Sentence, mentions []types.AspectMention) types.AspectSentimentResponse {
	cfg := extractor.Config
	SortMentions(mentions)

	response := types.AspectSentimentResponse{
		Content: MentionSections(mentions, cfg.CheckFeature(types.NegationFeature)),
		Summary: Aggregate(mentions, extractor.Aspects(), cfg.Params.IncludeEmpty),
	}
	if cfg.CheckFeature(types.SentenceScoresFeature) {
		SortSentences(sentences)
		response.Sentences = make([]types.SentenceScore, 0, len(sentences))
		for _, sent := range sentences {
			response.Sentences = append(response.Sentences, extractor.ScoreSentence(sent))
		}
	}
	return response
}

func MentionSections(mentions []types.AspectMention, withNegation bool) []types.MentionSection {
	sections := make([]types.MentionSection, len(mentions))
	for i, mention := range mentions {
		section := types.MentionSection{
			Id:        i,
			Aspect:    mention.Aspect,
			Keyword:   mention.Keyword,
			Text:      []interface{}{textOf(&mention.Span), mention.Begin, mention.End},
			Clause:    []interface{}{textOf(&mention.Clause), mention.Clause.Begin, mention.Clause.End},
			Sentiment: mention.Sentiment,
			Label:     mention.Sentiment.Label(),
		}
		if mention.Sentence != nil {
			section.Sentence = []int32{mention.Sentence.Begin, mention.Sentence.End}
		}
		if withNegation {
			negated := mention.Negated
			section.Negated = &negated
		}
		sections[i] = section
	}
	return sections
}

// TokenRows lists the token attributes of sentences in document order. Heads
// are document level token indices.
func TokenRows(sentences []*types.Sentence) []types.TokenRow {
	SortSentences(sentences)

	rows := make([]types.TokenRow, 0)
	offset := 0
	for _, sent := range sentences {
		for _, token := range sent.Tokens {
			lemma := ""
			if token.Lemma != nil {
				lemma = *token.Lemma
			}
			rows = append(rows, types.TokenRow{
				Text:    textOf(&token.Span),
				Lemma:   lemma,
				Pos:     token.Pos,
				Tag:     token.TagOrEmpty(),
				Dep:     token.Dep,
				Head:    offset + token.Head,
				Shape:   token.Shape,
				IsAlpha: token.IsAlpha,
				IsStop:  token.IsStop,
				Begin:   token.Begin,
				End:     token.End,
			})
		}
		offset += len(sent.Tokens)
	}
	return rows
}

func SortSentences(sentences []*types.Sentence) {
	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].Begin < sentences[j].Begin
	})
}

func textOf(span *types.Span) string {
	if span.Text == nil {
		return ""
	}
	return *span.Text
}
