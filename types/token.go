package types

import (
	"strings"
	"unicode"
)

type Token struct {
	Span
	// Index is the position of the token in its sentence.
	Index int
	// Tag is the Penn Treebank tag, Pos the coarse universal tag.
	Tag   *string
	Pos   string
	Lemma *string
	// Head is the sentence index of the syntactic head, a root points to itself.
	Head     int
	Dep      string
	Sentence *Sentence

	IsPunct   bool
	IsWord    bool
	IsSymbol  bool
	IsNumber  bool
	IsNewline bool
	IsSpace   bool
	IsStop    bool
	IsAlpha   bool
	IsTitle   bool
	Shape     string
}

func (token *Token) GetSpan() *Span {
	return &token.Span
}

func (token *Token) Lower() string {
	if token.Text == nil {
		return ""
	}
	return strings.ToLower(*token.Text)
}

func (token *Token) LemmaOrLower() string {
	if token.Lemma != nil && len(*token.Lemma) > 0 {
		return *token.Lemma
	}
	return token.Lower()
}

func (token *Token) TagOrEmpty() string {
	if token.Tag == nil {
		return ""
	}
	return *token.Tag
}

func (token *Token) IsRoot() bool {
	return token.Head == token.Index
}

// GetShape maps upper case letters to X, lower case letters to x and digits
// to d. Other runes are kept and runs of one shape character stop at four.
func GetShape(txt string) string {
	var sb strings.Builder
	var last rune
	seq := 0
	for _, r := range txt {
		var shape rune
		switch {
		case unicode.IsDigit(r):
			shape = 'd'
		case unicode.IsUpper(r):
			shape = 'X'
		case unicode.IsLetter(r):
			shape = 'x'
		default:
			shape = r
		}
		if shape == last {
			seq++
		} else {
			seq = 0
			last = shape
		}
		if seq < 4 {
			sb.WriteRune(shape)
		}
	}

	return sb.String()
}

func IsAlpha(txt string) bool {
	if len(txt) == 0 {
		return false
	}
	for _, r := range txt {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsTitle is true when every cased word starts upper case and continues lower case.
func IsTitle(txt string) bool {
	cased := false
	prevCased := false
	for _, r := range txt {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}
