package pipeline

import (
	"sync"

	"text2phenotype.com/absa/types"
)

func NewSentenceChannelSplitter(n int) func(in <-chan types.Sentence) []chan types.Sentence {

	return func(in <-chan types.Sentence) []chan types.Sentence {
		outs := make([]chan types.Sentence, n)
		// init channels
		for i := 0; i < n; i++ {
			outs[i] = make(chan types.Sentence)
		}

		go func() {
			defer closeAllChannels(outs)
			var wg sync.WaitGroup

			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					for _, out := range outs {
						out <- sent
					}
				}(sent)

			}

			wg.Wait()
		}()
		return outs
	}
}

func closeAllChannels(outs []chan types.Sentence) {
	for _, out := range outs {
		close(out)
	}
}
