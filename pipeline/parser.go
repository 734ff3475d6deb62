package pipeline

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/types"
)

// ParserStage parses sentences, taking heads from parse where it aligns.
type ParserStage func(in <-chan types.Sentence, parse *dependency.Parse, log zerolog.Logger) <-chan types.Sentence

func NewDependencyParser(subordinators map[string]bool) ParserStage {
	heuristic := dependency.NewHeuristicParser(subordinators)

	return func(in <-chan types.Sentence, parse *dependency.Parse, log zerolog.Logger) <-chan types.Sentence {
		out := make(chan types.Sentence)
		errLogger := log.With().Caller().Logger()

		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)

				go func(sent types.Sentence) {
					defer wg.Done()
					if parse == nil {
						heuristic(&sent)
						out <- sent
						return
					}

					err := dependency.Apply(&sent, parse)
					if errors.Is(err, dependency.ErrNoAlignment) {
						heuristic(&sent)
					} else if err != nil {
						errLogger.Err(err).
							Int32("begin", sent.Begin).
							Int32("end", sent.End).
							Msg("Failed to apply external parse")
						heuristic(&sent)
					}
					out <- sent
				}(sent)
			}
			wg.Wait()
		}()
		return out
	}
}
