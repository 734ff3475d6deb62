package pos

import "strings"

type SequenceValidator interface {
	Correct(word string, outcome string) string
}

// closed class words the perceptron model mistags after Treebank splitting
var defaultTagDictionary = map[string]string{
	"n't": "RB",
	"not": "RB",
	"ca":  "MD",
	"wo":  "MD",
	"'ll": "MD",
	"'m":  "VBP",
	"'re": "VBP",
	"'ve": "VBP",
}

type defaultSequenceValidator struct {
	tagDictionary map[string]string
}

func (g defaultSequenceValidator) Correct(word string, outcome string) string {
	if tag, ok := g.tagDictionary[strings.ToLower(word)]; ok {
		return tag
	}
	if outcome == "" {
		return "XX"
	}
	return outcome
}

func NewSequenceValidator() SequenceValidator {
	return defaultSequenceValidator{tagDictionary: defaultTagDictionary}
}
