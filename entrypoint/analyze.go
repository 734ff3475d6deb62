package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"text2phenotype.com/absa/aspects"
	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/pipeline"
	"text2phenotype.com/absa/report"
	"text2phenotype.com/absa/sentiment"
	"text2phenotype.com/absa/types"
)

var (
	inputFiles []string
	configFile string
	parseFile  string
	lexicon    string
	jobs       int
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [text]",
	Short: "Print token attributes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [text]",
	Short: "Print polarity scores per sentence and for the whole text",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSentiment,
}

var aspectsCmd = &cobra.Command{
	Use:   "aspects [text]",
	Short: "Print aspect mentions and the per aspect summary",
	Long: `Finds the keywords of every aspect of the configuration, scores the
clause governing each keyword and aggregates the scores per aspect.

Several files given with -f are analysed concurrently and summarized
together. With --format json the output is one object holding the
mentions of every file under "texts" and the shared "summary".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAspects,
}

func init() {
	for _, cmd := range []*cobra.Command{tokensCmd, sentimentCmd, aspectsCmd} {
		cmd.Flags().StringVar(&parseFile, "parse", "", "CoNLL-U or spaCy JSON parse of the text")
	}
	tokensCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "Read the text from a file")
	sentimentCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "Read the text from a file")
	sentimentCmd.Flags().StringVar(&lexicon, "lexicon", "", "Valence lexicon file (bundled lexicon when empty)")

	aspectsCmd.Flags().StringVarP(&configFile, "config", "c", "", "Aspect configuration YAML (required)")
	aspectsCmd.Flags().StringSliceVarP(&inputFiles, "file", "f", nil, "Text files to analyse")
	aspectsCmd.Flags().StringVar(&lexicon, "lexicon", "", "Valence lexicon file (bundled lexicon when empty)")
	aspectsCmd.Flags().IntVar(&jobs, "jobs", 4, "Files analysed at the same time")
	_ = aspectsCmd.MarkFlagRequired("config")
}

func newDocumentBuilder() (*aspects.DocumentBuilder, error) {
	return aspects.NewDocumentBuilder(aspects.DocumentBuilderParams{
		SentenceModel:       config.SentenceModel,
		LemmatizerResources: config.LemmatizerResources,
		Subordinators:       dependency.DefaultSubordinators,
	})
}

func newScorer() (*sentiment.Analyzer, error) {
	if lexicon != "" {
		return sentiment.NewAnalyzerFromPath(lexicon)
	}
	return sentiment.NewAnalyzerFromPath(config.LexiconPath)
}

// readInputs returns the positional text or the contents of every file,
// falling back to stdin.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 && len(inputFiles) > 0 {
		return nil, errors.New("pass either a text argument or files, not both")
	}
	if len(args) > 0 {
		return args, nil
	}
	if len(inputFiles) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return []string{string(text)}, nil
	}
	texts := make([]string, 0, len(inputFiles))
	for _, name := range inputFiles {
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		texts = append(texts, string(text))
	}
	return texts, nil
}

// readParse loads the --parse file. It only applies to a single input.
func readParse(text string, inputs int) (*dependency.Parse, error) {
	if parseFile == "" {
		return nil, nil
	}
	if inputs > 1 {
		return nil, errors.New("--parse needs exactly one input text")
	}
	data, err := os.ReadFile(parseFile)
	if err != nil {
		return nil, err
	}
	request := pipeline.Request{Text: text, Parse: string(data)}
	return request.ExternalParse()
}

func makeDoc(builder *aspects.DocumentBuilder, text string, inputs int) (*types.Document, error) {
	parse, err := readParse(text, inputs)
	if err != nil {
		return nil, err
	}
	return builder.MakeDocWithParse(text, parse)
}

func runTokens(cmd *cobra.Command, args []string) error {
	if err := report.CheckFormat(format); err != nil {
		return err
	}
	texts, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	builder, err := newDocumentBuilder()
	if err != nil {
		return err
	}
	var rows []types.TokenRow
	for _, text := range texts {
		doc, err := makeDoc(builder, text, len(texts))
		if err != nil {
			return err
		}
		rows = append(rows, aspects.TokenRows(doc.Sentences)...)
	}
	return report.WriteTokens(cmd.OutOrStdout(), rows, format)
}

func runSentiment(cmd *cobra.Command, args []string) error {
	if err := report.CheckFormat(format); err != nil {
		return err
	}
	texts, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	builder, err := newDocumentBuilder()
	if err != nil {
		return err
	}
	scorer, err := newScorer()
	if err != nil {
		return err
	}
	perText := make([]report.TextSentences, 0, len(texts))
	for i, text := range texts {
		doc, err := makeDoc(builder, text, len(texts))
		if err != nil {
			return err
		}
		scores := aspects.ScoreSentences(doc, scorer)
		whole := scorer.PolarityScores(strings.TrimSpace(text))
		scores = append(scores, types.SentenceScore{
			Sentence:  []int32{0, int32(len([]rune(text)))},
			Text:      "(document)",
			Sentiment: whole,
			Label:     whole.Label(),
		})
		perText = append(perText, report.TextSentences{File: inputName(i), Sentences: scores})
	}
	return report.WriteTextSentences(cmd.OutOrStdout(), perText, format)
}

func runAspects(cmd *cobra.Command, args []string) error {
	if err := report.CheckFormat(format); err != nil {
		return err
	}
	texts, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := types.LoadConfiguration(configFile)
	if err != nil {
		return err
	}
	if cfg.Pipeline != types.AspectSentimentPipeline {
		return fmt.Errorf("%s: %w: expected %s", cfg.Name, types.ErrPipelineType, types.AspectSentimentPipeline)
	}
	builder, err := newDocumentBuilder()
	if err != nil {
		return err
	}
	scorer, err := newScorer()
	if err != nil {
		return err
	}
	lookupCfgs, err := pipeline.CreateLookupConfigs(config.DictionaryPath, config.CachePath,
		[]types.Configuration{cfg}, scorer, aspects.GetDefaultExtractorParams())
	if err != nil {
		return err
	}
	extractor := lookupCfgs[cfg.Name].Extractor

	batchLogger := logger.NewLogger("Batch").With().
		Str("batch_id", uuid.New().String()).
		Str("config_name", cfg.Name).
		Logger()
	batchLogger.Info().Int("texts", len(texts)).Int("jobs", jobs).Msg("Analysing texts")

	perText, err := analyseAll(cmd.Context(), texts, jobs, func(text string) ([]types.AspectMention, error) {
		doc, err := makeDoc(builder, text, len(texts))
		if err != nil {
			return nil, err
		}
		return extractor.Extract(doc)
	})
	if err != nil {
		return err
	}

	rep := report.AspectsReport{Texts: make([]report.TextMentions, 0, len(perText))}
	var all []types.AspectMention
	for i, mentions := range perText {
		rep.Texts = append(rep.Texts, report.TextMentions{
			File:     inputName(i),
			Mentions: aspects.MentionSections(mentions, cfg.CheckFeature(types.NegationFeature)),
		})
		all = append(all, mentions...)
	}
	rep.Summary = aspects.Aggregate(all, extractor.Aspects(), cfg.Params.IncludeEmpty)
	batchLogger.Info().Int("mentions", len(all)).Msg("Finished batch")
	return report.WriteAspects(cmd.OutOrStdout(), rep, format)
}

// analyseAll runs analyse over the texts with at most jobs at a time and keeps
// the results in input order. The first error cancels the texts not started yet.
func analyseAll[T any](ctx context.Context, texts []string, jobs int, analyse func(text string) (T, error)) ([]T, error) {
	results := make([]T, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := analyse(text)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func inputName(i int) string {
	if i < len(inputFiles) {
		return inputFiles[i]
	}
	return ""
}
