package pipeline

import (
	"sync"

	"text2phenotype.com/absa/pos"
	"text2phenotype.com/absa/types"
)

func NewPOSTagger() Stage {
	tagger := pos.NewSentenceTagger()

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					tagger(&sent)
					out <- sent
				}(sent)

			}

			wg.Wait()

		}()
		return out
	}
}
