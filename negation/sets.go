package negation

func getAuxiliaries() map[string]bool {
	return map[string]bool{
		"can": true, "ca": true, "could": true, "will": true, "wo": true, "would": true,
		"shall": true, "should": true, "must": true, "may": true, "might": true,
		"do": true, "does": true, "did": true,
		"is": true, "are": true, "was": true, "were": true, "am": true, "be": true, "been": true,
		"'s": true, "'re": true, "'m": true,
		"has": true, "have": true, "had": true, "'ve": true, "'d": true, "'ll": true,
	}
}

func getNegParticles() map[string]bool {
	return map[string]bool{
		"not":      true,
		"n't":      true,
		"'t":       true,
		"never":    true,
		"hardly":   true,
		"barely":   true,
		"scarcely": true,
		"cannot":   true,
	}
}

// "not only", "not just" do not negate
func getNegBreakers() map[string]bool {
	return map[string]bool{
		"only": true,
		"just": true,
	}
}

func getNegVerbs() map[string]bool {
	return map[string]bool{
		"fail":     true,
		"fails":    true,
		"failed":   true,
		"failing":  true,
		"lack":     true,
		"lacks":    true,
		"lacked":   true,
		"lacking":  true,
		"refuse":   true,
		"refuses":  true,
		"refused":  true,
		"refusing": true,
	}
}

func getNegDeterminers() map[string]bool {
	return map[string]bool{
		"no":      true,
		"none":    true,
		"neither": true,
		"nor":     true,
		"nothing": true,
		"nobody":  true,
		"without": true,
	}
}

func getNegCollocHeads() map[string]bool {
	return map[string]bool{
		"lack":    true,
		"free":    true,
		"devoid":  true,
		"absence": true,
	}
}

func getNegCollocParts() map[string]bool {
	return map[string]bool{
		"of": true,
	}
}

// GetDefaultBoundaries lists the words a negation scope never crosses.
func GetDefaultBoundaries() map[string]bool {
	return map[string]bool{
		"but":             true,
		"however":         true,
		"nevertheless":    true,
		"notwithstanding": true,
		"though":          true,
		"although":        true,
		"whereas":         true,
		"yet":             true,
		"except":          true,
		"when":            true,
		"how":             true,
		"what":            true,
		"which":           true,
		"while":           true,
		"since":           true,
		"then":            true,
		"i":               true,
		"he":              true,
		"she":             true,
		"they":            true,
		"we":              true,
		";":               true,
		":":               true,
		".":               true,
		"!":               true,
		"?":               true,
		")":               true,
	}
}
