package dependency

import (
	"strings"

	"text2phenotype.com/absa/types"
)

type Parser func(sent *types.Sentence)

type clauseKind int

const (
	mainClause clauseKind = iota
	coordinatedClause
	subordinateClause
	complementClause
	paratacticClause
)

type segment struct {
	start  int
	end    int
	marker int
	kind   clauseKind
	head   int
}

// DefaultSubordinators open adverbial clauses. "that" opens a complement clause.
var DefaultSubordinators = map[string]bool{
	"because":  true,
	"although": true,
	"though":   true,
	"while":    true,
	"whereas":  true,
	"if":       true,
	"unless":   true,
	"since":    true,
	"when":     true,
	"whenever": true,
	"until":    true,
	"once":     true,
	"that":     true,
}

// NewHeuristicParser returns a rule based English parser over universal POS
// tags. Clauses are split at coordinating conjunctions joining predicates,
// at the words in boundaries and at semicolons, colons and newlines.
func NewHeuristicParser(boundaries map[string]bool) Parser {
	if boundaries == nil {
		boundaries = DefaultSubordinators
	}
	return func(sent *types.Sentence) {
		if len(sent.Tokens) == 0 {
			return
		}
		segments := splitClauses(sent.Tokens, boundaries)
		for i := range segments {
			segments[i].head = chooseHead(sent.Tokens, segments[i])
			attachLocal(sent.Tokens, segments[i])
		}
		linkClauses(sent.Tokens, segments)
	}
}

func isVerbal(token *types.Token) bool {
	return token.Pos == "VERB" || token.Pos == "AUX"
}

func isNominal(token *types.Token) bool {
	return token.Pos == "NOUN" || token.Pos == "PROPN"
}

func hasVerb(tokens []*types.Token, from int, to int) bool {
	for i := from; i < to && i < len(tokens); i++ {
		if isVerbal(tokens[i]) {
			return true
		}
	}
	return false
}

func isHardBoundary(token *types.Token) bool {
	if token.IsNewline {
		return true
	}
	if token.Text == nil {
		return false
	}
	return token.IsPunct && (*token.Text == ";" || *token.Text == ":")
}

func nextHardBoundary(tokens []*types.Token, from int) int {
	for i := from; i < len(tokens); i++ {
		if isHardBoundary(tokens[i]) {
			return i
		}
	}
	return len(tokens)
}

func isSubordinator(token *types.Token, boundaries map[string]bool) bool {
	switch token.Pos {
	case "SCONJ", "ADP", "ADV":
	default:
		if token.TagOrEmpty() != "IN" && token.TagOrEmpty() != "WRB" {
			return false
		}
	}
	return boundaries[token.Lower()]
}

func splitClauses(tokens []*types.Token, boundaries map[string]bool) []segment {
	var segments []segment
	current := segment{start: 0, marker: -1, kind: mainClause}
	push := func(end int) {
		current.end = end
		if current.end > current.start {
			segments = append(segments, current)
		}
	}

	for i, token := range tokens {
		switch {
		case isHardBoundary(token):
			push(i + 1)
			current = segment{start: i + 1, marker: -1, kind: paratacticClause}
		case token.Pos == "CCONJ" && i > current.start &&
			hasVerb(tokens, current.start, i) && hasVerb(tokens, i+1, nextHardBoundary(tokens, i+1)):
			push(i)
			current = segment{start: i, marker: i, kind: coordinatedClause}
		case isSubordinator(token, boundaries) && hasVerb(tokens, i+1, nextHardBoundary(tokens, i+1)):
			kind := subordinateClause
			if token.Lower() == "that" {
				kind = complementClause
			}
			if i == current.start {
				current.marker = i
				current.kind = kind
				continue
			}
			push(i)
			current = segment{start: i, marker: i, kind: kind}
		case token.Text != nil && *token.Text == "," && current.kind == subordinateClause &&
			hasVerb(tokens, current.start+1, i) && hasVerb(tokens, i+1, nextHardBoundary(tokens, i+1)):
			push(i + 1)
			current = segment{start: i + 1, marker: -1, kind: mainClause}
		}
	}
	push(len(tokens))

	// clauses without words join their left neighbour
	merged := segments[:0]
	for _, seg := range segments {
		if len(merged) > 0 && !hasWord(tokens, seg) {
			merged[len(merged)-1].end = seg.end
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}

func hasWord(tokens []*types.Token, seg segment) bool {
	for i := seg.start; i < seg.end; i++ {
		if tokens[i].IsWord || tokens[i].IsNumber {
			return true
		}
	}
	return false
}

func chooseHead(tokens []*types.Token, seg segment) int {
	candidate := func(i int) bool {
		return i != seg.marker && !tokens[i].IsNewline && !tokens[i].IsPunct
	}

	// main verb, infinitives only when nothing else is there
	firstVerb := -1
	for i := seg.start; i < seg.end; i++ {
		if !candidate(i) || tokens[i].Pos != "VERB" {
			continue
		}
		if i > seg.start && tokens[i-1].TagOrEmpty() == "TO" {
			if firstVerb < 0 {
				firstVerb = i
			}
			continue
		}
		return i
	}
	if firstVerb >= 0 {
		return firstVerb
	}

	// copula or auxiliary chain, the last one heads
	for i := seg.start; i < seg.end; i++ {
		if !candidate(i) || tokens[i].Pos != "AUX" {
			continue
		}
		head := i
		for j := i + 1; j < seg.end; j++ {
			if tokens[j].Pos == "AUX" {
				head = j
				continue
			}
			if tokens[j].Pos == "ADV" || tokens[j].Pos == "PART" {
				continue
			}
			break
		}
		return head
	}

	for i := seg.start; i < seg.end; i++ {
		if candidate(i) && isNominal(tokens[i]) {
			for i+1 < seg.end && isNominal(tokens[i+1]) {
				i++
			}
			return i
		}
	}
	for _, pos := range []string{"ADJ", "PRON", "NUM"} {
		for i := seg.start; i < seg.end; i++ {
			if candidate(i) && tokens[i].Pos == pos {
				return i
			}
		}
	}
	for i := seg.start; i < seg.end; i++ {
		if candidate(i) {
			return i
		}
	}
	return seg.start
}

type nounPhrase struct {
	start int
	head  int
}

func attach(token *types.Token, head int, dep string) {
	token.Head = head
	token.Dep = dep
}

func attachLocal(tokens []*types.Token, seg segment) {
	h := seg.head
	assigned := map[int]bool{h: true}

	if seg.marker >= 0 && seg.marker != h {
		dep := Mark
		if seg.kind == coordinatedClause {
			dep = CC
		}
		attach(tokens[seg.marker], h, dep)
		assigned[seg.marker] = true
	}

	phrases := findNounPhrases(tokens, seg, assigned)
	phraseOf := make(map[int]nounPhrase, len(phrases))
	for _, np := range phrases {
		phraseOf[np.head] = np
	}

	// the nearest free phrase left of a predicate is its subject
	subject := -1
	if !isNominal(tokens[h]) {
		for _, np := range phrases {
			if np.head < h && !precededBy(tokens, seg, np.start, "ADP", "CCONJ") {
				subject = np.head
			}
		}
	}

	objectTaken := false
	for i := seg.start; i < seg.end; i++ {
		if assigned[i] {
			continue
		}
		token := tokens[i]

		if np, ok := phraseOf[i]; ok {
			attachPhrase(tokens, seg, np, phrases, subject, &objectTaken)
			continue
		}

		switch {
		case token.IsNewline:
			attach(token, h, Dep)
		case token.IsPunct || token.Pos == "PUNCT":
			attach(token, h, Punct)
		case token.Lower() == "not" || token.Lower() == "n't" || token.Lower() == "never":
			attach(token, h, Neg)
		case token.TagOrEmpty() == "TO":
			if i+1 < seg.end && tokens[i+1].Pos == "VERB" {
				attach(token, i+1, Aux)
			} else {
				attach(token, h, Prep)
			}
		case token.Pos == "AUX":
			target := h
			if !isVerbal(tokens[h]) {
				target = nextVerb(tokens, i+1, seg.end, h)
			}
			attach(token, target, Aux)
		case token.Pos == "ADV":
			if i+1 < seg.end && (tokens[i+1].Pos == "ADJ" || tokens[i+1].Pos == "ADV") && i+1 != h {
				attach(token, i+1, Advmod)
			} else {
				attach(token, h, Advmod)
			}
		case token.Pos == "ADJ":
			switch {
			case i > h && isVerbal(tokens[h]):
				attach(token, h, Acomp)
			case isNominal(tokens[h]):
				attach(token, h, Amod)
			default:
				attach(token, h, Dep)
			}
		case token.Pos == "ADP":
			target := h
			if i > seg.start {
				if np, ok := phraseOf[i-1]; ok && np.head != h {
					target = np.head
				}
			}
			attach(token, target, Prep)
		case token.Pos == "VERB":
			switch {
			case i > seg.start && tokens[i-1].TagOrEmpty() == "TO":
				attach(token, h, Xcomp)
			case i < h:
				attach(token, h, Advcl)
			default:
				attach(token, h, Xcomp)
			}
		case token.Pos == "CCONJ":
			attach(token, h, CC)
		case token.Pos == "SCONJ":
			attach(token, h, Mark)
		case token.Pos == "NUM":
			attach(token, h, Nummod)
		default:
			attach(token, h, Dep)
		}
		assigned[i] = true
	}
}

func nextVerb(tokens []*types.Token, from int, to int, fallback int) int {
	for i := from; i < to; i++ {
		if tokens[i].Pos == "VERB" {
			return i
		}
	}
	return fallback
}

func precededBy(tokens []*types.Token, seg segment, idx int, pos ...string) bool {
	if idx <= seg.start || idx-1 == seg.marker {
		return false
	}
	prev := tokens[idx-1].Pos
	for _, p := range pos {
		if prev == p {
			return true
		}
	}
	return false
}

// findNounPhrases attaches determiners and modifiers inside noun phrases
// and returns the phrases with their head nouns.
func findNounPhrases(tokens []*types.Token, seg segment, assigned map[int]bool) []nounPhrase {
	var phrases []nounPhrase
	i := seg.start
	for i < seg.end {
		if i == seg.marker {
			i++
			continue
		}
		token := tokens[i]
		if token.Pos == "PRON" && token.TagOrEmpty() != "PRP$" && token.TagOrEmpty() != "WP$" {
			phrases = append(phrases, nounPhrase{start: i, head: i})
			i++
			continue
		}
		if !inNounPhrase(token) {
			i++
			continue
		}

		end := i
		head := -1
		for end < seg.end && end != seg.marker && inNounPhrase(tokens[end]) {
			if isNominal(tokens[end]) {
				head = end
			}
			end++
		}
		if head < 0 || head == seg.head && !isNominal(tokens[seg.head]) {
			i = end
			continue
		}
		if seg.head >= i && seg.head < head {
			// the clause head sits inside, keep only the nouns after it
			i = seg.head + 1
			continue
		}

		for j := i; j < head; j++ {
			modifier := tokens[j]
			switch {
			case modifier.Pos == "DET":
				attach(modifier, head, Det)
			case modifier.TagOrEmpty() == "PRP$" || modifier.TagOrEmpty() == "WP$":
				attach(modifier, head, Poss)
			case modifier.Pos == "NUM":
				attach(modifier, head, Nummod)
			case modifier.Pos == "ADJ":
				attach(modifier, head, Amod)
			case modifier.Pos == "ADV":
				target := head
				if j+1 < head && tokens[j+1].Pos == "ADJ" {
					target = j + 1
				}
				attach(modifier, target, Advmod)
			case modifier.TagOrEmpty() == "POS":
				attach(modifier, j-1, "case")
			case isNominal(modifier):
				if j+1 < head && tokens[j+1].TagOrEmpty() == "POS" {
					attach(modifier, head, Poss)
				} else {
					attach(modifier, head, Compound)
				}
			default:
				attach(modifier, head, Dep)
			}
			assigned[j] = true
		}
		phrases = append(phrases, nounPhrase{start: i, head: head})
		i = head + 1
	}
	return phrases
}

func inNounPhrase(token *types.Token) bool {
	switch token.Pos {
	case "DET", "NUM", "ADJ", "NOUN", "PROPN":
		return true
	case "PRON":
		return token.TagOrEmpty() == "PRP$" || token.TagOrEmpty() == "WP$"
	case "PART":
		return token.TagOrEmpty() == "POS"
	case "ADV":
		return false
	}
	return false
}

func attachPhrase(tokens []*types.Token, seg segment, np nounPhrase, phrases []nounPhrase, subject int, objectTaken *bool) {
	h := seg.head
	token := tokens[np.head]

	if np.start > seg.start {
		prev := np.start - 1
		switch tokens[prev].Pos {
		case "ADP":
			if prev != seg.marker {
				attach(token, prev, Pobj)
				return
			}
		case "CCONJ":
			if prev != seg.marker {
				if left := phraseEndingBefore(phrases, prev); left >= 0 {
					attach(token, left, Conj)
					attach(tokens[prev], left, CC)
					return
				}
			}
		}
	}

	switch {
	case np.head == subject:
		attach(token, h, Nsubj)
	case np.head < h:
		attach(token, h, "npadvmod")
	case tokens[h].Pos == "AUX" && !*objectTaken:
		attach(token, h, Attr)
		*objectTaken = true
	case tokens[h].Pos == "VERB" && !*objectTaken:
		attach(token, h, Dobj)
		*objectTaken = true
	default:
		attach(token, h, Dep)
	}
}

func phraseEndingBefore(phrases []nounPhrase, idx int) int {
	for _, np := range phrases {
		if np.head == idx-1 {
			return np.head
		}
	}
	return -1
}

func linkClauses(tokens []*types.Token, segments []segment) {
	root := 0
	for i, seg := range segments {
		if seg.kind != subordinateClause && seg.kind != complementClause {
			root = i
			break
		}
	}

	previousMain := func(k int) int {
		for i := k - 1; i >= 0; i-- {
			if segments[i].kind != subordinateClause && segments[i].kind != complementClause {
				return i
			}
		}
		return -1
	}
	nextMain := func(k int) int {
		for i := k + 1; i < len(segments); i++ {
			if segments[i].kind != subordinateClause && segments[i].kind != complementClause {
				return i
			}
		}
		return -1
	}

	for k, seg := range segments {
		head := tokens[seg.head]
		if k == root {
			attach(head, seg.head, Root)
			continue
		}
		switch seg.kind {
		case subordinateClause:
			target := previousMain(k)
			if target < 0 {
				target = nextMain(k)
			}
			if target < 0 {
				target = root
			}
			attach(head, segments[target].head, Advcl)
		case complementClause:
			if k == 0 {
				target := nextMain(k)
				if target < 0 {
					target = root
				}
				attach(head, segments[target].head, Ccomp)
				continue
			}
			attach(head, segments[k-1].head, Ccomp)
		case paratacticClause:
			target := previousMain(k)
			if target < 0 {
				target = root
			}
			attach(head, segments[target].head, Parataxis)
		default:
			target := previousMain(k)
			if target < 0 {
				target = root
			}
			attach(head, segments[target].head, Conj)
		}
	}

	// sentence final punctuation belongs to the root clause
	last := tokens[len(tokens)-1]
	if last.IsPunct && last.Index != segments[root].head && strings.ContainsAny(last.TagOrEmpty(), ".") {
		attach(last, segments[root].head, Punct)
	}
}
