package dependency

// Relation labels, ClearNLP style as produced by spaCy English models.
const (
	Root      = "ROOT"
	Acomp     = "acomp"
	Advcl     = "advcl"
	Advmod    = "advmod"
	Amod      = "amod"
	Attr      = "attr"
	Aux       = "aux"
	CC        = "cc"
	Ccomp     = "ccomp"
	Compound  = "compound"
	Conj      = "conj"
	Dep       = "dep"
	Det       = "det"
	Dobj      = "dobj"
	Mark      = "mark"
	Neg       = "neg"
	Nsubj     = "nsubj"
	NsubjPass = "nsubjpass"
	Nummod    = "nummod"
	Parataxis = "parataxis"
	Pobj      = "pobj"
	Poss      = "poss"
	Prep      = "prep"
	Punct     = "punct"
	Relcl     = "relcl"
	Xcomp     = "xcomp"
)

// clause level relations, conj only counts when it joins predicates
var clauseRelations = map[string]bool{
	Root:      true,
	Ccomp:     true,
	Advcl:     true,
	Parataxis: true,
	Relcl:     true,
}

// Universal Dependencies labels mapped onto the labels above.
var udLabels = map[string]string{
	"root":       Root,
	"obj":        Dobj,
	"iobj":       Dobj,
	"nmod":       Pobj,
	"obl":        Pobj,
	"case":       Prep,
	"acl:relcl":  Relcl,
	"nsubj:pass": NsubjPass,
	"aux:pass":   Aux,
	"nummod":     Nummod,
	"nmod:poss":  Poss,
	"cop":        Aux,
}

// NormalizeLabel maps Universal Dependencies labels onto the labels used here.
func NormalizeLabel(label string) string {
	if l, ok := udLabels[label]; ok {
		return l
	}
	if label == "" {
		return Dep
	}
	return label
}
