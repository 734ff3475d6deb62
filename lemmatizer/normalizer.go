package lemmatizer

import "regexp"

const (
	urlResult = "#url#"
	NN        = "NN"
	PRP       = "PRP"
	WP        = "WP"
	VB        = "VB"
	JJ        = "JJ"
	RB        = "RB"
	WRB       = "WRB"
)

var (
	digitLike   = regexp.MustCompile(`\d%|\$\d|(^|\d)\.\d|\d,\d|\d:\d|\d-\d|\d\/\d`)
	digitSpan   = regexp.MustCompile(`\d+`)
	urlSpan     = regexp.MustCompile(`((([A-Za-z]{3,9}:(?:\/\/)?)(?:[-;:&=\+\$,\w]+@)?[A-Za-z0-9.-]+|(?:www.|[-;:&=\+\$,\w]+@)[A-Za-z0-9.-]+)((?:\/[\+~%\/.\w-_]*)?\??(?:[-\+=&;%@.\w_]*)#?(?:[.\!\/\\w]*))?|(\w+\.)+(com|edu|gov|int|mil|net|org|biz)$)`)
	punctRepeat = regexp.MustCompile(`\.{2,}|\!{2,}|\?{2,}|\-{2,}|\*{2,}|\={2,}|\~{2,}|\,{2,}`)
)

// normalizeForm maps URLs to a placeholder, digit runs to 0 and repeated
// punctuation to two characters.
func normalizeForm(form string) string {
	if urlSpan.MatchString(form) {
		return urlResult
	}

	form = digitLike.ReplaceAllString(form, "0")
	form = digitSpan.ReplaceAllString(form, "0")
	return punctRepeat.ReplaceAllStringFunc(form, func(s string) string {
		return s[0:2]
	})
}

func IsNoun(pos string) bool {
	return StartsWithAny(pos, NN) || AnyOf(pos, PRP, WP)
}

func IsVerb(pos string) bool {
	return StartsWithAny(pos, VB)
}

func IsAdjective(pos string) bool {
	return StartsWithAny(pos, JJ)
}

func IsAdverb(pos string) bool {
	return StartsWithAny(pos, RB) || AnyOf(pos, WRB)
}
