package tokenizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/jdkato/prose/tokenize"

	"text2phenotype.com/absa/types"
)

const (
	newline = '\n'
	cr      = '\r'
)

var ErrAlignment = errors.New("token is not found in sentence text")

// Treebank output that differs from the source text.
var rewrites = map[string][]string{
	"``":    {`"`, "“"},
	"''":    {`"`, "”"},
	"-LRB-": {"("},
	"-RRB-": {")"},
	"-LSB-": {"["},
	"-RSB-": {"]"},
	"-LCB-": {"{"},
	"-RCB-": {"}"},
}

type Tokenizer func(sent *types.Sentence) error

// NewTokenizer splits sentences into Treebank words and maps every word back
// to its rune offsets. Newlines become tokens of their own.
func NewTokenizer() Tokenizer {
	treebank := tokenize.NewTreebankWordTokenizer()

	return func(sent *types.Sentence) error {
		if sent.Text == nil || len(*sent.Text) == 0 {
			return nil
		}
		runes := []rune(*sent.Text)
		sent.Tokens = sent.Tokens[:0]

		var missing []string
		lineStart := 0
		for i := 0; i <= len(runes); i++ {
			if i < len(runes) && runes[i] != newline {
				continue
			}
			line := runes[lineStart:i]
			if len(strings.TrimSpace(string(line))) > 0 {
				words := treebank.Tokenize(string(line))
				missing = append(missing, alignWords(sent, runes, lineStart, i, words)...)
			}
			if i < len(runes) {
				appendToken(sent, runes, i, i+1)
			}
			lineStart = i + 1
		}

		if len(missing) > 0 {
			return fmt.Errorf("%w: %q", ErrAlignment, missing)
		}
		return nil
	}
}

func alignWords(sent *types.Sentence, runes []rune, from int, to int, words []string) []string {
	var missing []string
	cursor := from
	for _, word := range words {
		begin := skipSpaces(runes, cursor, to)
		matched := 0
		for _, candidate := range candidates(word) {
			if hasPrefix(runes[begin:to], candidate) {
				matched = len(candidate)
				break
			}
		}
		if matched == 0 {
			missing = append(missing, word)
			continue
		}
		appendToken(sent, runes, begin, begin+matched)
		cursor = begin + matched
	}
	return missing
}

func candidates(word string) [][]rune {
	var result [][]rune
	for _, alt := range rewrites[word] {
		result = append(result, []rune(alt))
	}
	return append(result, []rune(word))
}

func hasPrefix(runes []rune, prefix []rune) bool {
	if len(prefix) == 0 || len(prefix) > len(runes) {
		return false
	}
	for i, r := range prefix {
		if runes[i] != r {
			return false
		}
	}
	return true
}

func skipSpaces(runes []rune, from int, to int) int {
	for from < to && unicode.IsSpace(runes[from]) {
		from++
	}
	return from
}

func appendToken(sent *types.Sentence, runes []rune, begin int, end int) {
	txt := string(runes[begin:end])
	token := createToken(txt, sent.Begin+int32(begin), sent.Begin+int32(end))
	token.Index = len(sent.Tokens)
	token.Head = token.Index
	token.Sentence = sent
	sent.Tokens = append(sent.Tokens, token)
}

func createToken(txt string, begin int32, end int32) *types.Token {
	first := []rune(txt)[0]

	token := types.Token{
		Span: types.Span{
			Begin: begin,
			End:   end,
			Text:  &txt,
		},
		IsNewline: first == newline || first == cr,
		IsAlpha:   types.IsAlpha(txt),
		IsTitle:   types.IsTitle(txt),
		Shape:     types.GetShape(txt),
	}
	if token.IsNewline {
		token.IsSpace = true
		return &token
	}

	token.IsWord = strings.IndexFunc(txt, unicode.IsLetter) >= 0
	token.IsNumber = !token.IsWord && unicode.IsDigit(first)
	token.IsPunct = !token.IsWord && !token.IsNumber && allRunes(txt, unicode.IsPunct)
	token.IsSymbol = !token.IsWord && !token.IsNumber && !token.IsPunct
	token.IsStop = token.IsWord && IsStopWord(txt)

	return &token
}

func allRunes(s string, f func(rune) bool) bool {
	for _, r := range s {
		if !f(r) {
			return false
		}
	}
	return true
}

// IsStopWord reports whether the English stop word list removes the word.
func IsStopWord(word string) bool {
	lower := strings.ToLower(word)
	if contraction, ok := contractionStops[lower]; ok {
		return contraction
	}
	return len(strings.TrimSpace(stopwords.CleanString(lower, "en", false))) == 0
}

// Treebank splits contractions into pieces the stop word list does not know.
var contractionStops = map[string]bool{
	"n't": true,
	"'s":  true,
	"'m":  true,
	"'re": true,
	"'ve": true,
	"'ll": true,
	"'d":  true,
	"ca":  true,
	"wo":  true,
}
