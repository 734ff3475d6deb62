package types

type MentionSection struct {
	Id        int           `json:"id"`
	Aspect    string        `json:"aspect"`
	Keyword   string        `json:"keyword"`
	Text      []interface{} `json:"text"`
	Sentence  []int32       `json:"sentence"`
	Clause    []interface{} `json:"clause"`
	Sentiment Sentiment     `json:"sentiment"`
	Label     string        `json:"label"`
	Negated   *bool         `json:"negated,omitempty"`
}

type AspectSummary struct {
	Aspect         string  `json:"aspect"`
	Mentions       int     `json:"mentions"`
	Neg            float64 `json:"neg"`
	Neu            float64 `json:"neu"`
	Pos            float64 `json:"pos"`
	Compound       float64 `json:"compound"`
	CompoundStdDev float64 `json:"compound_std"`
	PositiveShare  float64 `json:"positive_share"`
	NegativeShare  float64 `json:"negative_share"`
	NeutralShare   float64 `json:"neutral_share"`
	Label          string  `json:"label"`
}

type SentenceScore struct {
	Sentence  []int32   `json:"sentence"`
	Text      string    `json:"text"`
	Sentiment Sentiment `json:"sentiment"`
	Label     string    `json:"label"`
}

type TokenRow struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	Pos     string `json:"pos"`
	Tag     string `json:"tag"`
	Dep     string `json:"dep"`
	Head    int    `json:"head"`
	Shape   string `json:"shape"`
	IsAlpha bool   `json:"is_alpha"`
	IsStop  bool   `json:"is_stop"`
	Begin   int32  `json:"begin"`
	End     int32  `json:"end"`
}

type AspectSentimentResponse struct {
	Content   []MentionSection `json:"content"`
	Summary   []AspectSummary  `json:"summary"`
	Sentences []SentenceScore  `json:"sentences,omitempty"`
}

type TokenAttributesResponse struct {
	Tokens []TokenRow `json:"tokens"`
}
