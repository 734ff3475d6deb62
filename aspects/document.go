package aspects

import (
	"errors"

	"github.com/rs/zerolog"

	"text2phenotype.com/absa/dependency"
	"text2phenotype.com/absa/lemmatizer"
	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/nlp"
	"text2phenotype.com/absa/pos"
	"text2phenotype.com/absa/tokenizer"
	"text2phenotype.com/absa/types"
)

type DocumentBuilderParams struct {
	// punkt training JSON, the English model when empty
	SentenceModel string `json:"sentence_model"`
	// lemmatizer BSV folder, the bundled rules when empty
	LemmatizerResources string          `json:"lemmatizer_resources"`
	Subordinators       map[string]bool `json:"-"`
}

// DocumentBuilder runs the analysis chain over raw text.
type DocumentBuilder struct {
	split     nlp.SentenceSplitter
	tokenize  tokenizer.Tokenizer
	tag       func(sent *types.Sentence)
	lemmatize func(sent *types.Sentence)
	parse     dependency.Parser
	log       zerolog.Logger
}

func NewDocumentBuilder(params DocumentBuilderParams) (*DocumentBuilder, error) {
	split, err := nlp.NewSentenceSplitter(params.SentenceModel)
	if err != nil {
		return nil, err
	}
	analyzer, err := lemmatizer.NewLemmatizer(params.LemmatizerResources)
	if err != nil {
		return nil, err
	}

	return &DocumentBuilder{
		split:     split,
		tokenize:  tokenizer.NewTokenizer(),
		tag:       pos.NewSentenceTagger(),
		lemmatize: lemmatizer.NewSentenceLemmatizer(analyzer),
		parse:     dependency.NewHeuristicParser(params.Subordinators),
		log:       logger.NewLogger("Document builder"),
	}, nil
}

// MakeDoc builds an analysed document, sentences are parsed with the
// heuristic parser.
func (builder *DocumentBuilder) MakeDoc(text string) (*types.Document, error) {
	return builder.MakeDocWithParse(text, nil)
}

// MakeDocWithParse builds an analysed document and takes heads and relations
// from parse where its tokens align with the sentences.
func (builder *DocumentBuilder) MakeDocWithParse(text string, parse *dependency.Parse) (*types.Document, error) {
	if parse != nil {
		parse.Locate(text)
	}

	sentences := builder.split(text)
	doc := &types.Document{
		Text:      text,
		Sentences: make([]*types.Sentence, 0, len(sentences)),
	}
	for i := range sentences {
		sent := &sentences[i]
		if err := builder.AnalyzeSentence(sent, parse); err != nil {
			return nil, err
		}
		doc.Sentences = append(doc.Sentences, sent)
	}
	return doc, nil
}

// AnalyzeSentence tokenizes, tags, lemmatizes and parses one sentence.
func (builder *DocumentBuilder) AnalyzeSentence(sent *types.Sentence, parse *dependency.Parse) error {
	if err := builder.tokenize(sent); err != nil {
		return err
	}
	builder.tag(sent)
	builder.lemmatize(sent)
	return builder.Parse(sent, parse)
}

// Parse applies the external parse, the heuristic parser covers sentences
// the parse does not reach.
func (builder *DocumentBuilder) Parse(sent *types.Sentence, parse *dependency.Parse) error {
	if parse == nil {
		builder.parse(sent)
		return nil
	}

	err := dependency.Apply(sent, parse)
	switch {
	case errors.Is(err, dependency.ErrNoAlignment):
		builder.log.Debug().
			Int32("begin", sent.Begin).
			Int32("end", sent.End).
			Msg("External parse does not cover sentence")
		builder.parse(sent)
		return nil
	case err != nil:
		return err
	}
	return nil
}

// Tokenize, Tag and Lemmatize expose the single steps for staged runs.
func (builder *DocumentBuilder) Tokenize(sent *types.Sentence) error {
	return builder.tokenize(sent)
}

func (builder *DocumentBuilder) Tag(sent *types.Sentence) {
	builder.tag(sent)
}

func (builder *DocumentBuilder) Lemmatize(sent *types.Sentence) {
	builder.lemmatize(sent)
}

func (builder *DocumentBuilder) Split(text string) []types.Sentence {
	return builder.split(text)
}
