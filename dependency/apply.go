package dependency

import (
	"errors"

	"text2phenotype.com/absa/pos"
	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

var ErrNoAlignment = errors.New("no parsed token aligns with the sentence")

// Apply copies heads, labels, tags and lemmas of parsed tokens onto the
// sentence tokens they start in. Parsed heads outside the sentence become
// roots and unaligned tokens attach to their left neighbour.
func Apply(sent *types.Sentence, parse *Parse) error {
	if len(sent.Tokens) == 0 {
		return nil
	}
	stringStore := utils.GlobalStringStore()

	// parsed index -> sentence index
	aligned := make(map[int]int)
	// sentence index -> parsed index
	sources := make(map[int]int)
	for i, parsed := range parse.Tokens {
		if parsed.Offset < 0 {
			continue
		}
		offset := int32(parsed.Offset)
		if offset < sent.Begin || offset >= sent.End {
			continue
		}
		idx := tokenAt(sent, offset)
		if idx < 0 {
			continue
		}
		aligned[i] = idx
		if _, ok := sources[idx]; !ok {
			sources[idx] = i
		}
	}
	if len(sources) == 0 {
		return ErrNoAlignment
	}

	for idx, token := range sent.Tokens {
		parsedIdx, ok := sources[idx]
		if !ok {
			continue
		}
		parsed := parse.Tokens[parsedIdx]
		head, inside := aligned[parsed.Head]
		switch {
		case parsed.Head == parsedIdx || !inside || head == idx:
			token.Head = idx
			token.Dep = Root
		default:
			token.Head = head
			token.Dep = parsed.Dep
		}
		if parsed.Tag != "" {
			token.Tag = pos.TagPointer(parsed.Tag)
		}
		if parsed.Pos != "" {
			token.Pos = parsed.Pos
		}
		if parsed.Lemma != "" {
			token.Lemma = stringStore.GetPointer(parsed.Lemma)
		}
	}

	attachUnaligned(sent, sources)
	return nil
}

func tokenAt(sent *types.Sentence, offset int32) int {
	for idx, token := range sent.Tokens {
		if token.Begin <= offset && offset < token.End {
			return idx
		}
	}
	return -1
}

func attachUnaligned(sent *types.Sentence, sources map[int]int) {
	anchor := -1
	for idx := range sent.Tokens {
		if _, ok := sources[idx]; ok {
			anchor = idx
			break
		}
	}
	for idx, token := range sent.Tokens {
		if _, ok := sources[idx]; ok {
			anchor = idx
			continue
		}
		token.Head = anchor
		token.Dep = Dep
		if token.IsPunct {
			token.Dep = Punct
		}
	}
}
