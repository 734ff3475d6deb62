package pipeline

import (
	"text2phenotype.com/absa/aspects"
	"text2phenotype.com/absa/types"
)

func NewAspectSentimentResult() func(in <-chan SentenceMentions, cfg LookupConfig) <-chan Result {

	return func(in <-chan SentenceMentions, cfg LookupConfig) <-chan Result {
		out := make(chan Result)
		go func() {
			defer close(out)
			var sentences []*types.Sentence
			var allMentions []types.AspectMention

			for batch := range in {
				sentences = append(sentences, batch.Sentence)
				allMentions = append(allMentions, batch.Mentions...)
			}

			out <- Result{
				ConfigName: cfg.Name,
				Data:       cfg.Extractor.BuildResponse(sentences, allMentions),
			}
		}()
		return out
	}
}

func NewTokenAttributesResult() func(in <-chan types.Sentence, key string) <-chan Result {
	return func(in <-chan types.Sentence, key string) <-chan Result {
		out := make(chan Result)

		go func() {
			defer close(out)
			var sentences []*types.Sentence
			for sent := range in {
				sent := sent
				sentences = append(sentences, &sent)
			}

			out <- Result{
				ConfigName: key,
				Data:       types.TokenAttributesResponse{Tokens: aspects.TokenRows(sentences)},
			}
		}()

		return out
	}
}
