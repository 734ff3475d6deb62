package sentiment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// sentiText keeps contractions and emoticons, leading and trailing
// punctuation is stripped from words longer than two runes.
type sentiText struct {
	words      []string
	wordsLower []string
	isCapDiff  bool
}

func newSentiText(text string) *sentiText {
	fields := strings.Fields(text)
	words := make([]string, len(fields))
	lower := make([]string, len(fields))
	for i, field := range fields {
		words[i] = stripPunctIfWord(field)
		lower[i] = strings.ToLower(words[i])
	}
	return &sentiText{
		words:      words,
		wordsLower: lower,
		isCapDiff:  allCapDifferential(words),
	}
}

func stripPunctIfWord(token string) string {
	stripped := strings.Trim(token, punctuation)
	if utf8.RuneCountInString(stripped) <= 2 {
		return token
	}
	return stripped
}

// isUpper is true for words with cased runes that are all upper case.
func isUpper(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// allCapDifferential is true when some, but not all, words are ALL CAPS.
func allCapDifferential(words []string) bool {
	allCapWords := 0
	for _, word := range words {
		if isUpper(word) {
			allCapWords++
		}
	}
	capDifferential := len(words) - allCapWords
	return capDifferential > 0 && capDifferential < len(words)
}

// replaceEmojis swaps known emojis for their descriptions.
func replaceEmojis(text string, emojis map[string]string) string {
	if len(emojis) == 0 {
		return text
	}
	var sb strings.Builder
	prevSpace := true
	for _, r := range text {
		if description, ok := emojis[string(r)]; ok {
			if !prevSpace {
				sb.WriteByte(' ')
			}
			sb.WriteString(description)
			prevSpace = false
			continue
		}
		sb.WriteRune(r)
		prevSpace = r == ' '
	}
	return strings.TrimSpace(sb.String())
}
