package pipeline

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"text2phenotype.com/absa/aspects"
	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/lookup"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/types"
)

var ErrNoLookupConfigs = errors.New("failed to load at least one correct config")

type LookupConfig struct {
	Name      string
	Config    types.Configuration
	Dict      *lookup.Dictionary
	Extractor *aspects.Extractor
}

// SentenceMentions are the mentions found in one sentence.
type SentenceMentions struct {
	Sentence *types.Sentence
	Mentions []types.AspectMention
}

// CreateLookupConfigs loads the keyword dictionaries of the aspect sentiment
// configurations concurrently. Configurations whose dictionary fails to load
// are skipped.
func CreateLookupConfigs(dictDir string, cacheDir string, configs []types.Configuration, scorer *sentiment.Analyzer, params aspects.ExtractorParams) (map[string]LookupConfig, error) {

	absaLogger := logger.NewLogger("CreateLookupConfigs")
	absaLogger.Info().Msg("Loading configurations")

	var wg sync.WaitGroup
	var mu sync.Mutex
	dictMap := make(map[string]*lookup.Dictionary)

	for _, cfg := range configs {
		if cfg.Pipeline != types.AspectSentimentPipeline {
			continue
		}
		configLogger := absaLogger.With().Str("config_name", cfg.Name).Logger()
		errLogger := configLogger.With().Caller().Logger()

		wg.Add(1)
		go func(cfg types.Configuration, errLogger zerolog.Logger) {
			defer wg.Done()

			dict, err := lookup.CreateDictionary(cfg, dictDir, cacheDir)
			if err != nil {
				errLogger.Err(err).Msg("Could not load dictionary")
				return
			}

			mu.Lock()
			dictMap[cfg.Name] = dict
			mu.Unlock()
		}(cfg, errLogger)
	}

	wg.Wait()

	result := make(map[string]LookupConfig)
	for _, cfg := range configs {
		dict, ok := dictMap[cfg.Name]
		if !ok {
			continue
		}
		result[cfg.Name] = LookupConfig{
			Name:      cfg.Name,
			Config:    cfg,
			Dict:      dict,
			Extractor: aspects.NewExtractor(cfg, dict, scorer, params),
		}
	}
	if len(result) == 0 {
		return nil, ErrNoLookupConfigs
	}
	absaLogger.Info().Msgf("Loaded %d lookup configurations", len(result))
	return result, nil
}

func NewAspectLookup() func(in <-chan types.Sentence, cfg LookupConfig, tid string) <-chan SentenceMentions {
	return func(in <-chan types.Sentence, cfg LookupConfig, tid string) <-chan SentenceMentions {
		absaLogger := logger.NewLogger("AspectLookup").With().
			Str("config_name", cfg.Name).
			Str("tid", tid).Logger()

		out := make(chan SentenceMentions)
		extractor := cfg.Extractor

		go func() {
			defer close(out)
			var cnt uint32

			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)

				go func(sent types.Sentence) {
					defer wg.Done()

					mentions := extractor.Lookup(&sent)
					atomic.AddUint32(&cnt, uint32(len(mentions)))

					sort.SliceStable(mentions, func(i, j int) bool {
						return mentions[i].Begin < mentions[j].Begin
					})

					out <- SentenceMentions{Sentence: &sent, Mentions: mentions}
				}(sent)

			}

			wg.Wait()
			absaLogger.Debug().Msgf("Found %d mentions", cnt)
		}()
		return out
	}
}
