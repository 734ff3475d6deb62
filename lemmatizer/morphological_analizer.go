package lemmatizer

import (
	"errors"
	"strings"

	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

var ErrNoRules = errors.New("morphological rules are not loaded")

type MorphologicalAnalyzer func(form string, pos string) string

func NewMorphologicalAnalyzer(rules *MorphologicalRules) (MorphologicalAnalyzer, error) {
	if rules == nil {
		return nil, ErrNoRules
	}

	return func(form string, pos string) string {
		form = normalizeForm(form)
		form = strings.ToLower(form)
		pos = strings.ToUpper(pos)

		number, isNumber := rules.getNumber(form, pos)
		if isNumber {
			return number
		}

		// exceptions
		exception, isExeption := rules.getException(form, pos)
		if isExeption {
			return exception
		}

		// base-forms
		base, isBase := rules.getBase(form, pos)
		if isBase {
			return base
		}

		// abbreviations
		abbreviation, isAbbreviation := rules.getAbbreviation(form, pos)
		if isAbbreviation {
			return abbreviation
		}

		// inflected forms outside of the base lists
		if guess, ok := guessBase(form, pos); ok {
			return guess
		}

		return form

	}, nil
}

// NewLemmatizer loads the rules from resPath, or the bundled rules when resPath is empty.
func NewLemmatizer(resPath string) (MorphologicalAnalyzer, error) {
	rules, err := LoadRules(ResourcesFromPath(resPath))
	if err != nil {
		return nil, err
	}
	return NewMorphologicalAnalyzer(rules)
}

// NewSentenceLemmatizer lemmatizes every tagged word of a sentence.
func NewSentenceLemmatizer(analyzer MorphologicalAnalyzer) func(sent *types.Sentence) {
	stringStore := utils.GlobalStringStore()

	return func(sent *types.Sentence) {
		for _, token := range sent.Tokens {
			if !token.IsWord || token.Text == nil || token.Tag == nil {
				continue
			}
			token.Lemma = stringStore.GetPointer(analyzer(*token.Text, *token.Tag))
		}
	}
}
