package aspects

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"text2phenotype.com/absa/types"
)

// Aggregate summarizes mentions per aspect. Aspects listed in aspects but
// never mentioned are reported with zero counts when includeEmpty is set.
// Summaries are ordered by aspect name.
func Aggregate(mentions []types.AspectMention, aspects []string, includeEmpty bool) []types.AspectSummary {
	grouped := make(map[string][]types.Sentiment)
	for _, mention := range mentions {
		grouped[mention.Aspect] = append(grouped[mention.Aspect], mention.Sentiment)
	}
	if includeEmpty {
		for _, aspect := range aspects {
			if _, ok := grouped[aspect]; !ok {
				grouped[aspect] = nil
			}
		}
	}

	summaries := make([]types.AspectSummary, 0, len(grouped))
	for aspect, scores := range grouped {
		summaries = append(summaries, summarize(aspect, scores))
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Aspect < summaries[j].Aspect
	})
	return summaries
}

func summarize(aspect string, scores []types.Sentiment) types.AspectSummary {
	summary := types.AspectSummary{
		Aspect:   aspect,
		Mentions: len(scores),
		Label:    types.PolarityNeutral.Name(),
	}
	if len(scores) == 0 {
		return summary
	}

	neg := make([]float64, len(scores))
	neu := make([]float64, len(scores))
	pos := make([]float64, len(scores))
	compound := make([]float64, len(scores))
	var positive, negative, neutral int
	for i, score := range scores {
		neg[i], neu[i], pos[i], compound[i] = score.Neg, score.Neu, score.Pos, score.Compound
		switch score.Polarity() {
		case types.PolarityPositive:
			positive++
		case types.PolarityNegative:
			negative++
		default:
			neutral++
		}
	}

	mean, std := stat.MeanStdDev(compound, nil)
	if len(compound) < 2 {
		std = 0
	}
	total := float64(len(scores))

	summary.Neg = scalar.Round(stat.Mean(neg, nil), 3)
	summary.Neu = scalar.Round(stat.Mean(neu, nil), 3)
	summary.Pos = scalar.Round(stat.Mean(pos, nil), 3)
	summary.Compound = scalar.Round(mean, 4)
	summary.CompoundStdDev = scalar.Round(std, 4)
	summary.PositiveShare = scalar.Round(float64(positive)/total, 3)
	summary.NegativeShare = scalar.Round(float64(negative)/total, 3)
	summary.NeutralShare = scalar.Round(float64(neutral)/total, 3)
	summary.Label = types.Sentiment{Compound: mean}.Label()
	return summary
}
