package dependency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

type spacyToken struct {
	Id    int    `json:"id"`
	Head  int    `json:"head"`
	Pos   string `json:"pos"`
	Tag   string `json:"tag"`
	Dep   string `json:"dep"`
	Idx   *int   `json:"idx"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
}

type spacyDoc struct {
	Tokens [][]spacyToken `json:"tokens"`
}

// ReadSpacyJSON reads spaCy style tokens, either {"tokens": [[...], ...]} or
// a bare array of sentences. Ids and heads are document level token indices.
func ReadSpacyJSON(r io.Reader) (*Parse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	var sentences [][]spacyToken
	if len(data) > 0 && data[0] == '[' {
		err = json.Unmarshal(data, &sentences)
	} else {
		var doc spacyDoc
		err = json.Unmarshal(data, &doc)
		sentences = doc.Tokens
	}
	if err != nil {
		return nil, fmt.Errorf("spacy json: %w", err)
	}

	var tokens []spacyToken
	for _, sent := range sentences {
		tokens = append(tokens, sent...)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyParse
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Id < tokens[j].Id
	})

	index := make(map[int]int, len(tokens))
	for i, token := range tokens {
		index[token.Id] = i
	}

	parse := &Parse{Tokens: make([]ParsedToken, len(tokens))}
	for i, token := range tokens {
		head, ok := index[token.Head]
		dep := NormalizeLabel(token.Dep)
		if !ok || head == i {
			head = i
			dep = Root
		}
		offset := -1
		if token.Idx != nil {
			offset = *token.Idx
		}
		parse.Tokens[i] = ParsedToken{
			Text:   token.Text,
			Lemma:  token.Lemma,
			Pos:    token.Pos,
			Tag:    token.Tag,
			Dep:    dep,
			Head:   head,
			Offset: offset,
		}
	}
	return parse, nil
}
