package lookup

import (
	"encoding/json"

	"text2phenotype.com/absa/utils"
)

// KeywordTerm is one tokenized keyword of an aspect. RareWordIndex points to
// the token the term is indexed by.
type KeywordTerm struct {
	Tokens        []*string
	Aspect        *string
	Keyword       string
	TextLength    uint32
	RareWordIndex byte
}

func (term *KeywordTerm) GetHashCode() uint64 {
	var toHash [][]byte
	for _, t := range term.Tokens {
		toHash = append(toHash, []byte(*t))
	}

	toHash = append(toHash, []byte(*term.Aspect))

	return utils.HashBytes(toHash...)
}

func (term *KeywordTerm) GetRareWord() *string {
	return term.Tokens[term.RareWordIndex]
}

func (term *KeywordTerm) GetTokenCount() int {
	return len(term.Tokens)
}

type MapListIterator func() (*KeywordTerm, bool)

// CreateMapListIterator walks the terms of every key present in the index.
func CreateMapListIterator(m KeywordIndex, keys []*string) MapListIterator {
	currentKey := 0
	cursor := 0

	var actualKeys []*string
	seen := make(map[*string]bool)
	for _, k := range keys {
		if _, hasKey := m[k]; hasKey && !seen[k] {
			seen[k] = true
			actualKeys = append(actualKeys, k)
		}
	}

	l := len(actualKeys)

	return func() (*KeywordTerm, bool) {
		if l == 0 || currentKey >= l {
			return nil, false
		}

		key := actualKeys[currentKey]

		if cursor >= len(m[key]) {
			cursor = 0
			currentKey = currentKey + 1

			if currentKey >= l {
				return nil, false
			}
			key = actualKeys[currentKey]
		}

		value := *m[key][cursor]
		cursor = cursor + 1
		return &value, true
	}
}

// KeywordIndex maps the rare word of each term to the terms it indexes.
type KeywordIndex map[*string][]*KeywordTerm

type cachedTerm struct {
	Tokens        []string `json:"tokens"`
	Aspect        string   `json:"aspect"`
	Keyword       string   `json:"keyword"`
	TextLength    uint32   `json:"text_length"`
	RareWordIndex byte     `json:"rare_word_index"`
}

func (idx KeywordIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]cachedTerm, len(idx))
	for k, terms := range idx {
		cached := make([]cachedTerm, len(terms))
		for i, term := range terms {
			tokens := make([]string, len(term.Tokens))
			for j, token := range term.Tokens {
				tokens[j] = *token
			}
			cached[i] = cachedTerm{
				Tokens:        tokens,
				Aspect:        *term.Aspect,
				Keyword:       term.Keyword,
				TextLength:    term.TextLength,
				RareWordIndex: term.RareWordIndex,
			}
		}
		out[*k] = cached
	}
	return json.Marshal(out)
}

func (idx KeywordIndex) UnmarshalJSON(data []byte) error {
	ss := make(map[string][]cachedTerm)
	if err := json.Unmarshal(data, &ss); err != nil {
		return err
	}

	// aspect names keep their case, tokens go through the string store
	aspects := make(map[string]*string)
	aspectPtr := func(s string) *string {
		ptr, ok := aspects[s]
		if !ok {
			ptr = &s
			aspects[s] = ptr
		}
		return ptr
	}
	store := utils.GlobalStringStore()

	for k, cached := range ss {
		terms := make([]*KeywordTerm, len(cached))
		for i, c := range cached {
			terms[i] = &KeywordTerm{
				Tokens:        store.GetPointers(c.Tokens),
				Aspect:        aspectPtr(c.Aspect),
				Keyword:       c.Keyword,
				TextLength:    c.TextLength,
				RareWordIndex: c.RareWordIndex,
			}
		}
		idx[store.GetPointer(k)] = terms
	}
	return nil
}
