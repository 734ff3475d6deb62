package types

type Polarity int8

func (p Polarity) Name() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	default:
		return "neutral"
	}
}

const (
	PolarityPositive Polarity = 1
	PolarityNegative Polarity = -1
	PolarityNeutral  Polarity = 0
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

type Sentiment struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

func (s Sentiment) Polarity() Polarity {
	switch {
	case s.Compound >= PositiveThreshold:
		return PolarityPositive
	case s.Compound <= NegativeThreshold:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

func (s Sentiment) Label() string {
	return s.Polarity().Name()
}
