package pipeline

import (
	"sync"

	"text2phenotype.com/absa/lemmatizer"
	"text2phenotype.com/absa/types"
)

func NewLemmatizer(resPath string) (Stage, error) {
	analyzer, err := lemmatizer.NewLemmatizer(resPath)
	if err != nil {
		return nil, err
	}
	lemmatize := lemmatizer.NewSentenceLemmatizer(analyzer)

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)

				go func(sent types.Sentence) {
					defer wg.Done()
					lemmatize(&sent)
					out <- sent
				}(sent)

			}
			wg.Wait()
		}()
		return out
	}, nil
}
