package pipeline

import (
	"sync"
)

// NewClauseScorer finds the governing clause of every mention and scores it.
func NewClauseScorer() func(in <-chan SentenceMentions, cfg LookupConfig) <-chan SentenceMentions {

	return func(in <-chan SentenceMentions, cfg LookupConfig) <-chan SentenceMentions {
		out := make(chan SentenceMentions)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for batch := range in {
				wg.Add(1)
				go func(batch SentenceMentions) {
					defer wg.Done()
					cfg.Extractor.Score(batch.Mentions)
					out <- batch
				}(batch)
			}
			wg.Wait()
		}()

		return out
	}
}
