package pos

import (
	"strings"
	"sync"

	"github.com/jdkato/prose/tag"

	"text2phenotype.com/absa/types"
)

const SpaceTag = "_SP"

type Tagger func(words []string) []string

var (
	perceptron     *tag.PerceptronTagger
	perceptronOnce sync.Once

	// tags keep their case, the global string store lowercases
	tagStore sync.Map
)

// TagPointer interns a part-of-speech tag.
func TagPointer(tag string) *string {
	ptr, _ := tagStore.LoadOrStore(tag, &tag)
	return ptr.(*string)
}

// NewTagger returns Penn Treebank tags from the pretrained averaged
// perceptron. The model is loaded once per process.
func NewTagger() Tagger {
	perceptronOnce.Do(func() {
		perceptron = tag.NewPerceptronTagger()
	})
	validator := NewSequenceValidator()

	return func(words []string) []string {
		if len(words) == 0 {
			return nil
		}
		tokens := perceptron.Tag(words)
		tags := make([]string, len(words))
		for i := range words {
			outcome := ""
			if i < len(tokens) {
				outcome = tokens[i].Tag
			}
			tags[i] = validator.Correct(words[i], outcome)
		}
		return tags
	}
}

// NewSentenceTagger tags every token of a sentence and fills the coarse tag.
func NewSentenceTagger() func(sent *types.Sentence) {
	tagger := NewTagger()

	return func(sent *types.Sentence) {
		if len(sent.Tokens) == 0 {
			return
		}

		words := make([]string, 0, len(sent.Tokens))
		wordsIndex := make([]int, 0, len(sent.Tokens))
		for i, token := range sent.Tokens {
			if token.IsNewline {
				token.Tag = TagPointer(SpaceTag)
				token.Pos = SPACE
				continue
			}
			words = append(words, *token.Text)
			wordsIndex = append(wordsIndex, i)
		}

		for i, tokenTag := range tagger(words) {
			token := sent.Tokens[wordsIndex[i]]
			token.Tag = TagPointer(tokenTag)
			token.Pos = UniversalFor(tokenTag, token.Lower())
		}
	}
}

func IsNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func IsVerb(tag string) bool {
	return strings.HasPrefix(tag, "VB") || tag == "MD"
}

func IsAdjective(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

func IsAdverb(tag string) bool {
	return strings.HasPrefix(tag, "RB") || tag == "WRB"
}
