package pipeline

import (
	"sync"

	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
)

type Stage func(in <-chan types.Sentence) <-chan types.Sentence

func NewTokenizer() Stage {
	tokenize := tokenizer.NewTokenizer()
	absaLogger := logger.NewLogger("Tokenizer")

	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {

					defer wg.Done()
					err := tokenize(&sent)
					if err != nil {
						absaLogger.Error().Err(err).
							Int32("begin", sent.Begin).
							Int32("end", sent.End).
							Msg("Failed to tokenize sentence")
					}

					out <- sent
				}(sent)

			}

			wg.Wait()
		}()

		return out
	}
}
