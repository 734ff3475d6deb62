package dependency

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrEmptyParse = errors.New("parse has no tokens")

// ParsedToken is a token of an externally produced parse. Head is the
// document level index of the head token, a root points to itself.
type ParsedToken struct {
	Text   string
	Lemma  string
	Pos    string
	Tag    string
	Dep    string
	Head   int
	Offset int
}

// Parse holds the tokens of a whole document in order.
type Parse struct {
	Tokens []ParsedToken
}

// Locate fills missing rune offsets by searching token texts in order.
func (parse *Parse) Locate(text string) {
	byteCursor := 0
	runeCursor := 0
	for i := range parse.Tokens {
		token := &parse.Tokens[i]
		if token.Offset >= 0 {
			continue
		}
		idx := strings.Index(text[byteCursor:], token.Text)
		if idx < 0 || len(token.Text) == 0 {
			continue
		}
		runeCursor += utf8.RuneCountInString(text[byteCursor : byteCursor+idx])
		token.Offset = runeCursor
		byteCursor += idx + len(token.Text)
		runeCursor += utf8.RuneCountInString(token.Text)
	}
}
