package pipeline

import (
	"text2phenotype.com/absa/logger"
)

// NewNegationDetector flags negated mentions. A failed batch is logged and
// forwarded without flags.
func NewNegationDetector() func(in <-chan SentenceMentions, cfg LookupConfig) <-chan SentenceMentions {
	absaLogger := logger.NewLogger("Negation detector")

	return func(in <-chan SentenceMentions, cfg LookupConfig) <-chan SentenceMentions {
		out := make(chan SentenceMentions)
		errLogger := absaLogger.With().Str("config_name", cfg.Name).Caller().Logger()

		go func() {
			defer close(out)
			for batch := range in {
				if err := cfg.Extractor.DetectNegation(batch.Mentions); err != nil {
					errLogger.Err(err).
						Int32("begin", batch.Sentence.Begin).
						Int32("end", batch.Sentence.End).
						Msg("Failed to detect negation")
				}
				out <- batch
			}
		}()

		return out
	}
}
