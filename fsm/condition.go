package fsm

import (
	"strings"
	"unicode/utf8"

	"text2phenotype.com/absa/types"
)

type Condition func(token types.HasSpan) bool

func AnyCondition(token types.HasSpan) bool {
	return true
}

func lowerText(token types.HasSpan) string {
	txt := token.GetSpan().Text
	if txt == nil {
		return ""
	}
	return strings.ToLower(*txt)
}

func NewPunctuationValueCondition(ch rune) Condition {
	return func(token types.HasSpan) bool {
		t, isOk := token.(*types.Token)
		if !isOk {
			return false
		}

		if t.IsPunct && utf8.RuneCountInString(*t.Text) == 1 {
			r, _ := utf8.DecodeRuneInString(*t.Text)
			return r == ch
		}
		return false
	}
}

// NewWordSetCondition matches the lowercased token text against a set.
func NewWordSetCondition(set map[string]bool) Condition {
	return func(token types.HasSpan) bool {
		return set[lowerText(token)]
	}
}

// NewLemmaSetCondition prefers the token lemma and falls back to the text.
func NewLemmaSetCondition(set map[string]bool) Condition {
	return func(token types.HasSpan) bool {
		if t, isOk := token.(*types.Token); isOk {
			return set[t.LemmaOrLower()]
		}
		return set[lowerText(token)]
	}
}

func NewTextValueCondition(value string) Condition {
	l := len(value)
	return func(token types.HasSpan) bool {
		t, isOk := token.(*types.Token)
		if !isOk || t.Text == nil {
			return false
		}
		return t.IsWord && len(*t.Text) == l && strings.EqualFold(*t.Text, value)
	}
}

// NewPosCondition matches universal part-of-speech tags.
func NewPosCondition(tags ...string) Condition {
	return func(token types.HasSpan) bool {
		t, isOk := token.(*types.Token)
		if !isOk {
			return false
		}
		for _, tag := range tags {
			if t.Pos == tag {
				return true
			}
		}
		return false
	}
}

func NewDisjointCondition(conditions ...Condition) Condition {
	return func(token types.HasSpan) bool {
		for _, cond := range conditions {
			if cond(token) {
				return true
			}
		}

		return false
	}
}

func NewCombineCondition(conditions ...Condition) Condition {
	return func(token types.HasSpan) bool {
		for _, cond := range conditions {
			if !cond(token) {
				return false
			}
		}

		return true
	}
}

func NewNegateCondition(cond Condition) Condition {
	return func(token types.HasSpan) bool {
		return !cond(token)
	}
}

func NumberCondition(token types.HasSpan) bool {
	t, isOk := token.(*types.Token)
	if !isOk {
		return false
	}

	return t.IsNumber
}
