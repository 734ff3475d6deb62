package lookup

import (
	"sort"
	"strings"

	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
)

type MatchParams struct {
	MatchMode         string
	ExclusionTags     []string
	PrecisionMode     bool
	MinimumLookupSpan uint32
}

func GetDefaultMatchParams() MatchParams {
	return MatchParams{
		MatchMode:         types.MatchModeLemma,
		MinimumLookupSpan: 1,
	}
}

func MatchParamsFromConfig(cfg types.Configuration) MatchParams {
	params := GetDefaultMatchParams()
	params.MatchMode = cfg.Params.Lookup.GetMatchMode()
	params.ExclusionTags = cfg.Params.Lookup.ExclusionTags
	params.PrecisionMode = cfg.Params.Lookup.PrecisionMode
	return params
}

type hit struct {
	span       types.Span
	tokenBegin int
	tokenEnd   int
	// aspect -> keyword
	aspects map[string]string
}

// Search finds the keyword mentions of a sentence. Mentions come back sorted
// by position and aspect, one per span and aspect.
func (dict *Dictionary) Search(sent *types.Sentence, params MatchParams) []types.AspectMention {
	hits := make(map[uint64]*hit)

	mode := params.MatchMode
	if mode == "" {
		mode = types.MatchModeLemma
	}
	if mode == types.MatchModeLemma || mode == types.MatchModeBoth {
		dict.searchTerms(sent, params, hits)
	}
	if mode == types.MatchModeSubstring || mode == types.MatchModeBoth {
		dict.searchSubstrings(sent, params, hits)
	}

	found := make([]*hit, 0, len(hits))
	for _, h := range hits {
		found = append(found, h)
	}
	if params.PrecisionMode {
		found = keepLongest(found)
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].span.Begin != found[j].span.Begin {
			return found[i].span.Begin < found[j].span.Begin
		}
		return found[i].span.End < found[j].span.End
	})

	var mentions []types.AspectMention
	for _, h := range found {
		aspects := make([]string, 0, len(h.aspects))
		for aspect := range h.aspects {
			aspects = append(aspects, aspect)
		}
		sort.Strings(aspects)
		for _, aspect := range aspects {
			mentions = append(mentions, types.AspectMention{
				Span:       h.span,
				Aspect:     aspect,
				Keyword:    h.aspects[aspect],
				TokenBegin: h.tokenBegin,
				TokenEnd:   h.tokenEnd,
				Sentence:   sent,
				Attributes: make(map[string]interface{}),
			})
		}
	}
	return mentions
}

func (dict *Dictionary) searchTerms(sent *types.Sentence, params MatchParams, hits map[uint64]*hit) {
	store := utils.GlobalStringStore()
	nonNewLineIndices := getNonNewLineIndices(sent)
	tokens := sent.Tokens

	lowers := make([]*string, len(tokens))
	for i, token := range tokens {
		if token.Text != nil {
			lowers[i] = store.GetPointer(*token.Text)
		}
	}

	for idx, lookupIndex := range nonNewLineIndices {
		lookupToken := tokens[lookupIndex]
		if isNonLookupToken(lookupToken, params) || lowers[lookupIndex] == nil {
			continue
		}

		words := make([]*string, 0, 2)
		words = append(words, lowers[lookupIndex])
		if lookupToken.Lemma != nil && lookupToken.Lemma != lowers[lookupIndex] {
			words = append(words, lookupToken.Lemma)
		}
		itr := dict.Lookup(words)

		for {
			term, ok := itr()
			if !ok {
				break
			}

			if term.TextLength < params.MinimumLookupSpan {
				continue
			}

			if term.GetTokenCount() == 1 {
				addHit(sent, hits, lookupIndex, lookupIndex, term)
				continue
			}

			lookupStartIndex := idx - int(term.RareWordIndex)
			lookupEndIndex := lookupStartIndex + term.GetTokenCount() - 1
			if lookupStartIndex < 0 || lookupEndIndex >= len(nonNewLineIndices) {
				continue
			}

			termStartIndex := nonNewLineIndices[lookupStartIndex]
			termEndIndex := nonNewLineIndices[lookupEndIndex]

			if isTermMatch(term, tokens, lowers, termStartIndex, termEndIndex) {
				addHit(sent, hits, termStartIndex, termEndIndex, term)
			}
		}
	}
}

// searchSubstrings matches single token keywords contained in a token text
// or lemma.
func (dict *Dictionary) searchSubstrings(sent *types.Sentence, params MatchParams, hits map[uint64]*hit) {
	for i, token := range sent.Tokens {
		if isNonLookupToken(token, params) {
			continue
		}
		lower := token.Lower()
		lemma := ""
		if token.Lemma != nil {
			lemma = *token.Lemma
		}
		for _, term := range dict.singles {
			keyword := *term.Tokens[0]
			if term.TextLength < params.MinimumLookupSpan || len(keyword) == 0 {
				continue
			}
			if strings.Contains(lower, keyword) || (len(lemma) > 0 && strings.Contains(lemma, keyword)) {
				addHit(sent, hits, i, i, term)
			}
		}
	}
}

func addHit(sent *types.Sentence, hits map[uint64]*hit, begin int, end int, term *KeywordTerm) {
	span := types.Span{
		Begin: sent.Tokens[begin].Begin,
		End:   sent.Tokens[end].End,
	}
	spanText, _ := span.GetTextFromSentence(sent)
	span.Text = &spanText

	spanHash := span.GetHashCode()
	h, ok := hits[spanHash]
	if !ok {
		h = &hit{span: span, tokenBegin: begin, tokenEnd: end, aspects: make(map[string]string)}
		hits[spanHash] = h
	}
	if _, seen := h.aspects[*term.Aspect]; !seen {
		h.aspects[*term.Aspect] = term.Keyword
	}
}

// keepLongest drops every hit that overlaps a longer one.
func keepLongest(found []*hit) []*hit {
	sort.Slice(found, func(i, j int) bool {
		li, lj := found[i].span.Len(), found[j].span.Len()
		if li != lj {
			return li > lj
		}
		return found[i].span.Begin < found[j].span.Begin
	})

	var kept []*hit
	for _, h := range found {
		overlaps := false
		for _, k := range kept {
			if types.SpansIntersect(&h.span, &k.span) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, h)
		}
	}
	return kept
}

func getNonNewLineIndices(sentence *types.Sentence) []int {
	var result []int
	for i, token := range sentence.Tokens {
		if !token.IsNewline {
			result = append(result, i)
		}
	}
	return result
}

func isTermMatch(term *KeywordTerm, tokens []*types.Token, lowers []*string, beginIdx int, endIdx int) bool {
	hitTokens := term.Tokens
	hit := 0
	for i := beginIdx; i < endIdx+1; i++ {
		if tokens[i].IsNewline {
			continue
		}
		if hit >= len(hitTokens) {
			return false
		}
		if hitTokens[hit] == tokens[i].Lemma || hitTokens[hit] == lowers[i] {
			hit++
			continue
		}

		return false
	}
	return hit == len(hitTokens)
}

func isNonLookupToken(token *types.Token, params MatchParams) bool {
	toExclude := false
	for _, tag := range params.ExclusionTags {
		if strings.EqualFold(tag, token.TagOrEmpty()) {
			toExclude = true
			break
		}
	}

	return token.IsNewline || token.IsSpace || token.IsPunct || toExclude
}
