package pipeline

import (
	"encoding/json"

	"text2phenotype.com/absa/aspects"
	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/nlp"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/types"
)

type Params struct {
	DictionaryFolder    string                  `json:"dictionary_folder"`
	CacheFolder         string                  `json:"cache_folder"`
	SentenceModel       string                  `json:"sentence_model"`
	LemmatizerResources string                  `json:"lemmatizer_resources"`
	LexiconPath         string                  `json:"lexicon_path"`
	Configurations      []types.Configuration   `json:"configurations"`
	ExtractorParams     aspects.ExtractorParams `json:"extractor_params"`
}

func GetDefaultParams(dictPath string, cachePath string, cfgs []types.Configuration) Params {
	return Params{
		DictionaryFolder: dictPath,
		CacheFolder:      cachePath,
		Configurations:   cfgs,
		ExtractorParams:  aspects.GetDefaultExtractorParams(),
	}
}

// AspectSentiment assembles the staged pipeline: sentence detector,
// tokenizer, tagger, lemmatizer and parser feed one branch per configuration.
func AspectSentiment(params Params) (Pipeline, error) {
	absaLogger := logger.NewLogger("Aspect sentiment pipeline")
	errLogger := absaLogger.With().Caller().Logger()
	absaLogger.Info().
		Interface("params", params).
		Msg("Starting aspect sentiment pipeline (see parameters in 'params' field)")

	scorer, err := sentiment.NewAnalyzerFromPath(params.LexiconPath)
	if err != nil {
		errLogger.Err(err).
			Str("lexicon_path", params.LexiconPath).
			Msg("Failed to load sentiment lexicon")
		return nil, err
	}

	hasAspectConfigs := false
	for _, cfg := range params.Configurations {
		hasAspectConfigs = hasAspectConfigs || cfg.Pipeline == types.AspectSentimentPipeline
	}
	lookupCfg := make(map[string]LookupConfig)
	if hasAspectConfigs {
		lookupCfg, err = CreateLookupConfigs(params.DictionaryFolder, params.CacheFolder, params.Configurations, scorer, params.ExtractorParams)
		if err != nil {
			errLogger.Err(err).
				Interface("configurations", params.Configurations).
				Str("dictionary_folder", params.DictionaryFolder).
				Msg("Failed to create lookup config")
			return nil, err
		}
	}

	sentenceDetector, err := nlp.NewSentenceDetector(params.SentenceModel)
	if err != nil {
		errLogger.Err(err).
			Str("sentence_model", params.SentenceModel).
			Msg("Failed to create sentence detector")
		return nil, err
	}

	tokenizer := NewTokenizer()
	tagger := NewPOSTagger()

	lemmatizer, err := NewLemmatizer(params.LemmatizerResources)
	if err != nil {
		errLogger.Err(err).
			Str("lemmatizer_resources_folder", params.LemmatizerResources).
			Msg("Failed to create lemmatizer")
		return nil, err
	}

	parser := NewDependencyParser(dependency.DefaultSubordinators)

	// configurations without a loaded dictionary get no branch
	var active []types.Configuration
	for _, cfg := range params.Configurations {
		if _, ok := lookupCfg[cfg.Name]; ok || cfg.Pipeline == types.TokenAttributesPipeline {
			active = append(active, cfg)
		}
	}
	splitter := NewSentenceChannelSplitter(len(active))

	lookup := NewAspectLookup()
	negationDetector := NewNegationDetector()
	clauseScorer := NewClauseScorer()
	aspectResponse := NewAspectSentimentResult()
	tokenResponse := NewTokenAttributesResult()

	return func(request Request) <-chan string {
		responseChan := make(chan string)
		pplnLog := absaLogger.With().Str("tid", request.Tid).Logger()
		pplnLog.Info().Msg("Started aspect sentiment pipeline")
		reqErrLogger := pplnLog.With().Caller().Logger()

		go func() {
			parse, err := request.ExternalParse()
			if err != nil {
				reqErrLogger.Err(err).Msg("Failed to read external parse, using heuristic parser")
				parse = nil
			}
			if parse != nil {
				parse.Locate(request.Text)
			}

			var in = make(chan string)

			sd := sentenceDetector(in)
			tok := tokenizer(sd)
			tag := tagger(tok)
			lem := lemmatizer(tag)
			dep := parser(lem, parse, pplnLog)

			split := splitter(dep)

			resultChannel := make(chan Result)
			defer close(resultChannel)

			for i, cfg := range active {
				switch cfg.Pipeline {
				case types.AspectSentimentPipeline:
					{
						lCfg := lookupCfg[cfg.Name]

						mentions := lookup(split[i], lCfg, request.Tid)

						if cfg.CheckFeature(types.NegationFeature) {
							mentions = negationDetector(mentions, lCfg)
						}
						mentions = clauseScorer(mentions, lCfg)

						connect(aspectResponse(mentions, lCfg), resultChannel)
					}
				case types.TokenAttributesPipeline:
					{
						connect(tokenResponse(split[i], cfg.Name), resultChannel)
					}
				}
			}

			in <- request.Text
			close(in)
			response := make(map[string]interface{})

			for i := 0; i < len(active); i++ {
				res := <-resultChannel
				pplnLog.Info().
					Str("config_name", res.ConfigName).
					Msg("Finished pipeline for configuration")
				response[res.ConfigName] = res.Data
			}

			buf, err := json.Marshal(response)
			if err != nil {
				reqErrLogger.Err(err).Msg("Failed to marshall response")
			}
			pplnLog.Info().Msg("Finished aspect sentiment pipeline")
			responseChan <- string(buf)
		}()

		return responseChan
	}, nil

}
