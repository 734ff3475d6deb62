package pipeline

import (
	"strings"

	"text2phenotype.com/absa/dependency"
)

type Request struct {
	Text string `json:"redis_key"`
	Tid  string `json:"tid"`
	// Parse is an optional CoNLL-U or spaCy JSON parse of Text.
	Parse string `json:"parse,omitempty"`
}

// ExternalParse reads the attached parse, nil when the request has none.
func (request Request) ExternalParse() (*dependency.Parse, error) {
	parse := strings.TrimSpace(request.Parse)
	if len(parse) == 0 {
		return nil, nil
	}
	if strings.HasPrefix(parse, "[") || strings.HasPrefix(parse, "{") {
		return dependency.ReadSpacyJSON(strings.NewReader(parse))
	}
	return dependency.ReadCoNLLU(strings.NewReader(parse))
}
