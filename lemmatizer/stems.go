package lemmatizer

import "strings"

const vowels = "aeiou"

// guessBase strips the inflection the tag announces and repairs the stem.
func guessBase(form string, pos string) (string, bool) {
	switch pos {
	case "NNS", "NNPS":
		return guessNounBase(form)
	case "VBZ":
		return guessThirdPersonBase(form)
	case "VBD", "VBN":
		return guessSuffixBase(form, "ed", "ied")
	case "VBG":
		return guessSuffixBase(form, "ing", "")
	case "JJR", "RBR":
		return guessSuffixBase(form, "er", "ier")
	case "JJS", "RBS":
		return guessSuffixBase(form, "est", "iest")
	}
	return "", false
}

func guessNounBase(form string) (string, bool) {
	switch {
	case len(form) > 4 && strings.HasSuffix(form, "ies"):
		return form[:len(form)-3] + "y", true
	case strings.HasSuffix(form, "es") && endsWithSibilant(form[:len(form)-2]):
		return form[:len(form)-2], true
	case len(form) > 2 && strings.HasSuffix(form, "s") && !AnyOf(form[len(form)-2:], "ss", "us", "is"):
		return form[:len(form)-1], true
	}
	return "", false
}

func guessThirdPersonBase(form string) (string, bool) {
	switch {
	case len(form) > 4 && strings.HasSuffix(form, "ies"):
		return form[:len(form)-3] + "y", true
	case strings.HasSuffix(form, "es") && endsWithSibilant(form[:len(form)-2]):
		return form[:len(form)-2], true
	case len(form) > 2 && strings.HasSuffix(form, "s") && !strings.HasSuffix(form, "ss"):
		return form[:len(form)-1], true
	}
	return "", false
}

// guessSuffixBase handles suffix, and ySuffix for the y -> i spelling change.
func guessSuffixBase(form string, suffix string, ySuffix string) (string, bool) {
	if len(ySuffix) > 0 && len(form) > len(ySuffix)+1 && strings.HasSuffix(form, ySuffix) {
		return form[:len(form)-len(ySuffix)] + "y", true
	}
	if len(form) < len(suffix)+2 || !strings.HasSuffix(form, suffix) {
		return "", false
	}
	return repairStem(form[:len(form)-len(suffix)]), true
}

// repairStem undoes consonant doubling or restores a silent e.
func repairStem(stem string) string {
	n := len(stem)
	if n < 2 {
		return stem
	}
	last, prev := stem[n-1], stem[n-2]
	if last == prev && strings.IndexByte("bdgmnprt", last) >= 0 {
		return stem[:n-1]
	}
	switch {
	case last == 'v' || last == 'z':
		return stem + "e"
	case AnyOf(stem[n-2:], "rg", "dg", "nc", "rc"):
		return stem + "e"
	case n == 3 && isShortSyllable(stem):
		return stem + "e"
	}
	return stem
}

func isShortSyllable(stem string) bool {
	n := len(stem)
	c1, v, c2 := stem[n-3], stem[n-2], stem[n-1]
	return !isVowel(c1) && isVowel(v) && !isVowel(c2) && strings.IndexByte("wxy", c2) < 0
}

func isVowel(b byte) bool {
	return strings.IndexByte(vowels, b) >= 0
}

func endsWithSibilant(stem string) bool {
	return strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") || strings.HasSuffix(stem, "z") ||
		strings.HasSuffix(stem, "ch") || strings.HasSuffix(stem, "sh")
}
