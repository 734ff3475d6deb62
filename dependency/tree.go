package dependency

import (
	"sort"
	"strings"

	"text2phenotype.com/absa/types"
)

// Tree indexes the children of every token of a parsed sentence.
type Tree struct {
	sent     *types.Sentence
	children [][]int
}

func NewTree(sent *types.Sentence) *Tree {
	tree := &Tree{
		sent:     sent,
		children: make([][]int, len(sent.Tokens)),
	}
	for idx, token := range sent.Tokens {
		if token.Head != idx && token.Head >= 0 && token.Head < len(sent.Tokens) {
			tree.children[token.Head] = append(tree.children[token.Head], idx)
		}
	}
	return tree
}

func (tree *Tree) Children(idx int) []int {
	return tree.children[idx]
}

// Subtree returns idx and every index it dominates, in sentence order.
func (tree *Tree) Subtree(idx int) []int {
	return tree.subtree(idx, nil)
}

func (tree *Tree) subtree(idx int, skip func(child int) bool) []int {
	visited := map[int]bool{idx: true}
	stack := []int{idx}
	result := []int{idx}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range tree.children[current] {
			if visited[child] || (skip != nil && skip(child)) {
				continue
			}
			visited[child] = true
			result = append(result, child)
			stack = append(stack, child)
		}
	}
	sort.Ints(result)
	return result
}

// IsClauseHead reports whether the token heads a clause of its own.
func (tree *Tree) IsClauseHead(idx int) bool {
	token := tree.sent.Tokens[idx]
	if token.Head == idx {
		return true
	}
	if clauseRelations[token.Dep] {
		return true
	}
	return token.Dep == Conj && tree.isPredicate(idx)
}

func (tree *Tree) isPredicate(idx int) bool {
	switch tree.sent.Tokens[idx].Pos {
	case "VERB", "AUX":
		return true
	}
	for _, child := range tree.children[idx] {
		switch tree.sent.Tokens[child].Dep {
		case Nsubj, NsubjPass, Aux:
			return true
		}
	}
	return false
}

// ClauseHead walks up from idx to the nearest clause head. It returns false
// when heads are broken or cyclic.
func (tree *Tree) ClauseHead(idx int) (int, bool) {
	tokens := tree.sent.Tokens
	current := idx
	for steps := 0; steps <= len(tokens); steps++ {
		if tree.IsClauseHead(current) {
			return current, true
		}
		next := tokens[current].Head
		if next < 0 || next >= len(tokens) {
			return 0, false
		}
		current = next
	}
	return 0, false
}

var trimmedRelations = map[string]bool{
	CC:    true,
	Punct: true,
	Mark:  true,
}

// GoverningClause returns the clause that governs the token at idx. With
// isolate set nested clauses are cut out and connectives at the edges are
// trimmed. Broken trees fall back to the whole sentence.
func GoverningClause(sent *types.Sentence, idx int, isolate bool) types.Span {
	if idx < 0 || idx >= len(sent.Tokens) {
		return sentenceSpan(sent)
	}
	tree := NewTree(sent)
	head, ok := tree.ClauseHead(idx)
	if !ok {
		return sentenceSpan(sent)
	}

	var indices []int
	if isolate {
		indices = tree.subtree(head, func(child int) bool {
			return tree.IsClauseHead(child) && !tree.dominates(child, idx)
		})
	} else {
		indices = tree.Subtree(head)
	}

	kept := make([]*types.Token, 0, len(indices))
	for _, i := range indices {
		if !sent.Tokens[i].IsNewline {
			kept = append(kept, sent.Tokens[i])
		}
	}
	if isolate {
		for len(kept) > 1 && trimmable(kept[0], idx) {
			kept = kept[1:]
		}
		for len(kept) > 1 && trimmable(kept[len(kept)-1], idx) {
			kept = kept[:len(kept)-1]
		}
	}
	if len(kept) == 0 {
		return sentenceSpan(sent)
	}
	return joinTokens(sent, kept)
}

func (tree *Tree) dominates(ancestor int, idx int) bool {
	tokens := tree.sent.Tokens
	current := idx
	for steps := 0; steps <= len(tokens); steps++ {
		if current == ancestor {
			return true
		}
		next := tokens[current].Head
		if next == current || next < 0 || next >= len(tokens) {
			return false
		}
		current = next
	}
	return false
}

func trimmable(token *types.Token, keep int) bool {
	return token.Index != keep && (trimmedRelations[token.Dep] || token.IsPunct)
}

func sentenceSpan(sent *types.Sentence) types.Span {
	text := ""
	if sent.Text != nil {
		text = *sent.Text
	}
	return types.Span{Begin: sent.Begin, End: sent.End, Text: &text}
}

// joinTokens rebuilds the text of tokens from the sentence, gaps become one space.
func joinTokens(sent *types.Sentence, tokens []*types.Token) types.Span {
	var sb strings.Builder
	for i, token := range tokens {
		if i > 0 && tokens[i-1].End != token.Begin {
			sb.WriteByte(' ')
		}
		if txt, ok := token.GetTextFromSentence(sent); ok {
			sb.WriteString(txt)
		} else if token.Text != nil {
			sb.WriteString(*token.Text)
		}
	}
	text := sb.String()
	return types.Span{
		Begin: tokens[0].Begin,
		End:   tokens[len(tokens)-1].End,
		Text:  &text,
	}
}
