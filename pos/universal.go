package pos

import "strings"

// Universal part of speech tags.
const (
	ADJ   = "ADJ"
	ADP   = "ADP"
	ADV   = "ADV"
	AUX   = "AUX"
	CCONJ = "CCONJ"
	DET   = "DET"
	INTJ  = "INTJ"
	NOUN  = "NOUN"
	NUM   = "NUM"
	PART  = "PART"
	PRON  = "PRON"
	PROPN = "PROPN"
	PUNCT = "PUNCT"
	SCONJ = "SCONJ"
	SYM   = "SYM"
	VERB  = "VERB"
	X     = "X"
	SPACE = "SPACE"
)

var universalTags = map[string]string{
	"NN":     NOUN,
	"NNS":    NOUN,
	"NNP":    PROPN,
	"NNPS":   PROPN,
	"VB":     VERB,
	"VBD":    VERB,
	"VBG":    VERB,
	"VBN":    VERB,
	"VBP":    VERB,
	"VBZ":    VERB,
	"MD":     AUX,
	"JJ":     ADJ,
	"JJR":    ADJ,
	"JJS":    ADJ,
	"RB":     ADV,
	"RBR":    ADV,
	"RBS":    ADV,
	"WRB":    ADV,
	"IN":     ADP,
	"RP":     ADP,
	"TO":     PART,
	"POS":    PART,
	"DT":     DET,
	"PDT":    DET,
	"WDT":    DET,
	"PRP":    PRON,
	"PRP$":   PRON,
	"WP":     PRON,
	"WP$":    PRON,
	"EX":     PRON,
	"CD":     NUM,
	"CC":     CCONJ,
	"UH":     INTJ,
	"SYM":    SYM,
	"$":      SYM,
	"#":      SYM,
	",":      PUNCT,
	".":      PUNCT,
	":":      PUNCT,
	"``":     PUNCT,
	"''":     PUNCT,
	"(":      PUNCT,
	")":      PUNCT,
	"-LRB-":  PUNCT,
	"-RRB-":  PUNCT,
	"HYPH":   PUNCT,
	"NFP":    PUNCT,
	"FW":     X,
	"LS":     X,
	"XX":     X,
	SpaceTag: SPACE,
}

var auxiliaries = map[string]bool{
	"be": true, "am": true, "is": true, "are": true, "was": true, "were": true, "been": true, "being": true,
	"'m": true, "'re": true, "'s": true,
	"have": true, "has": true, "had": true, "'ve": true,
	"do": true, "does": true, "did": true,
}

var subordinators = map[string]bool{
	"because": true, "although": true, "though": true, "while": true, "whereas": true,
	"if": true, "unless": true, "since": true, "when": true, "whenever": true,
	"after": true, "before": true, "until": true, "once": true, "as": true,
	"that": true, "whether": true,
}

// Universal maps a Penn Treebank tag to its universal tag.
func Universal(tag string) string {
	if u, ok := universalTags[tag]; ok {
		return u
	}
	return X
}

// UniversalFor refines Universal with the lowercased word: forms of be, have
// and do are AUX, negation particles are PART and subordinating IN words are SCONJ.
func UniversalFor(tag string, lower string) string {
	u := Universal(tag)
	switch {
	case u == VERB && auxiliaries[lower]:
		return AUX
	case tag == "RB" && (lower == "not" || lower == "n't"):
		return PART
	case tag == "IN" && subordinators[strings.TrimSpace(lower)]:
		return SCONJ
	}
	return u
}
