package sentiment

import (
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/types"
)

const LexiconEnv = "ABSA_SENTIMENT_LEXICON"

// Analyzer scores text with a valence lexicon and the VADER heuristics.
type Analyzer struct {
	lexicon *Lexicon
}

func NewAnalyzer(lexicon *Lexicon) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// NewAnalyzerFromPath loads the lexicon from lexiconPath, from the
// ABSA_SENTIMENT_LEXICON file when the path is empty, and falls back to the
// bundled seed lexicon.
func NewAnalyzerFromPath(lexiconPath string) (*Analyzer, error) {
	if len(lexiconPath) == 0 {
		lexiconPath = os.Getenv(LexiconEnv)
	}
	if len(lexiconPath) == 0 {
		lexicon, err := DefaultLexicon()
		if err != nil {
			return nil, err
		}
		return NewAnalyzer(lexicon), nil
	}

	lexicon, err := LoadLexicon(lexiconPath, "")
	if err != nil {
		return nil, err
	}
	analyzerLogger := logger.NewLogger("Sentiment analyzer")
	analyzerLogger.Info().
		Str("path", lexiconPath).
		Int("words", len(lexicon.Words)).
		Msg("Loaded lexicon")
	return NewAnalyzer(lexicon), nil
}

func (analyzer *Analyzer) inLexicon(word string) bool {
	_, ok := analyzer.lexicon.Words[word]
	return ok
}

// PolarityScores returns negative, neutral and positive proportions and the
// normalized compound score of the text.
func (analyzer *Analyzer) PolarityScores(text string) types.Sentiment {
	text = replaceEmojis(text, analyzer.lexicon.Emojis)
	st := newSentiText(text)

	sentiments := make([]float64, 0, len(st.words))
	for i, lower := range st.wordsLower {
		// modifiers carry no valence of their own
		if _, ok := boosters[lower]; ok {
			sentiments = append(sentiments, 0)
			continue
		}
		if i < len(st.words)-1 && lower == "kind" && st.wordsLower[i+1] == "of" {
			sentiments = append(sentiments, 0)
			continue
		}
		sentiments = append(sentiments, analyzer.sentimentValence(st, i))
	}

	sentiments = butCheck(st.wordsLower, sentiments)
	return scoreValence(sentiments, text)
}

func (analyzer *Analyzer) sentimentValence(st *sentiText, i int) float64 {
	item := st.words[i]
	lower := st.wordsLower[i]
	words := st.wordsLower

	valence, ok := analyzer.lexicon.Words[lower]
	if !ok {
		return 0
	}

	// "no" as a negation of the next lexicon word, not as a word of its own
	if lower == "no" && i != len(words)-1 && analyzer.inLexicon(words[i+1]) {
		valence = 0
	}
	if (i > 0 && words[i-1] == "no") ||
		(i > 1 && words[i-2] == "no") ||
		(i > 2 && words[i-3] == "no" && (words[i-1] == "or" || words[i-1] == "nor")) {
		valence = analyzer.lexicon.Words[lower] * NScalar
	}

	if isUpper(item) && st.isCapDiff {
		if valence > 0 {
			valence += CIncr
		} else {
			valence -= CIncr
		}
	}

	for startI := 0; startI < 3; startI++ {
		if i <= startI {
			continue
		}
		preceding := st.words[i-(startI+1)]
		if analyzer.inLexicon(words[i-(startI+1)]) {
			continue
		}
		s := scalarIncDec(preceding, valence, st.isCapDiff)
		if startI == 1 && s != 0 {
			s *= 0.95
		}
		if startI == 2 && s != 0 {
			s *= 0.9
		}
		valence += s
		valence = negationCheck(valence, words, startI, i)
		if startI == 2 {
			valence = specialIdiomsCheck(valence, words, i)
		}
	}

	return leastCheck(valence, words, i, analyzer.inLexicon)
}

// scalarIncDec is the change a preceding booster or dampener applies.
func scalarIncDec(word string, valence float64, isCapDiff bool) float64 {
	scalar, ok := boosters[strings.ToLower(word)]
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar *= -1
	}
	if isUpper(word) && isCapDiff {
		if valence > 0 {
			scalar += CIncr
		} else {
			scalar -= CIncr
		}
	}
	return scalar
}

func isNegated(word string) bool {
	return negations[word] || strings.Contains(word, "n't")
}

func negationCheck(valence float64, words []string, startI int, i int) float64 {
	switch startI {
	case 0:
		if isNegated(words[i-1]) {
			valence *= NScalar
		}
	case 1:
		switch {
		case words[i-2] == "never" && (words[i-1] == "so" || words[i-1] == "this"):
			valence *= 1.25
		case words[i-2] == "without" && words[i-1] == "doubt":
		case isNegated(words[i-2]):
			valence *= NScalar
		}
	case 2:
		switch {
		case words[i-3] == "never" &&
			(words[i-2] == "so" || words[i-2] == "this" || words[i-1] == "so" || words[i-1] == "this"):
			valence *= 1.25
		case words[i-3] == "without" && (words[i-2] == "doubt" || words[i-1] == "doubt"):
		case isNegated(words[i-3]):
			valence *= NScalar
		}
	}
	return valence
}

func specialIdiomsCheck(valence float64, words []string, i int) float64 {
	oneZero := words[i-1] + " " + words[i]
	twoOneZero := words[i-2] + " " + oneZero
	twoOne := words[i-2] + " " + words[i-1]
	threeTwoOne := words[i-3] + " " + twoOne
	threeTwo := words[i-3] + " " + words[i-2]

	for _, seq := range []string{oneZero, twoOneZero, twoOne, threeTwoOne, threeTwo} {
		if value, ok := specialCaseIdioms[seq]; ok {
			valence = value
			break
		}
	}

	if len(words)-1 > i {
		if value, ok := specialCaseIdioms[words[i]+" "+words[i+1]]; ok {
			valence = value
		}
	}
	if len(words)-1 > i+1 {
		if value, ok := specialCaseIdioms[words[i]+" "+words[i+1]+" "+words[i+2]]; ok {
			valence = value
		}
	}

	// booster bigrams such as "kind of"
	for _, ngram := range []string{threeTwoOne, threeTwo, twoOne} {
		if value, ok := boosters[ngram]; ok {
			valence += value
		}
	}
	return valence
}

func leastCheck(valence float64, words []string, i int, inLexicon func(string) bool) float64 {
	if i > 0 && words[i-1] == "least" && !inLexicon(words[i-1]) {
		if i == 1 || (words[i-2] != "at" && words[i-2] != "very") {
			valence *= NScalar
		}
	}
	return valence
}

// butCheck halves the valence before the first "but" and boosts the valence after it.
func butCheck(words []string, sentiments []float64) []float64 {
	bi := -1
	for i, word := range words {
		if word == "but" {
			bi = i
			break
		}
	}
	if bi < 0 {
		return sentiments
	}
	for si := range sentiments {
		switch {
		case si < bi:
			sentiments[si] *= butBefore
		case si > bi:
			sentiments[si] *= butAfter
		}
	}
	return sentiments
}

func punctuationEmphasis(text string) float64 {
	epCount := strings.Count(text, "!")
	if epCount > maxExclamations {
		epCount = maxExclamations
	}
	amplifier := float64(epCount) * exclamationIncr

	qmCount := strings.Count(text, "?")
	if qmCount > 1 {
		if qmCount <= 3 {
			amplifier += float64(qmCount) * questionIncr
		} else {
			amplifier += maxQuestionBoost
		}
	}
	return amplifier
}

// Normalize maps a valence sum into [-1, 1].
func Normalize(score float64) float64 {
	normScore := score / math.Sqrt(score*score+Alpha)
	return math.Max(-1, math.Min(1, normScore))
}

func siftSentimentScores(sentiments []float64) (float64, float64, int) {
	posSum, negSum, neuCount := 0.0, 0.0, 0
	for _, s := range sentiments {
		switch {
		case s > 0:
			// +1 compensates for neutral words counted as 1
			posSum += s + 1
		case s < 0:
			negSum += s - 1
		default:
			neuCount++
		}
	}
	return posSum, negSum, neuCount
}

func scoreValence(sentiments []float64, text string) types.Sentiment {
	if len(sentiments) == 0 {
		return types.Sentiment{}
	}

	sum := floats.Sum(sentiments)
	amplifier := punctuationEmphasis(text)
	if sum > 0 {
		sum += amplifier
	} else if sum < 0 {
		sum -= amplifier
	}
	compound := Normalize(sum)

	posSum, negSum, neuCount := siftSentimentScores(sentiments)
	if posSum > math.Abs(negSum) {
		posSum += amplifier
	} else if posSum < math.Abs(negSum) {
		negSum -= amplifier
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	return types.Sentiment{
		Neg:      scalar.Round(math.Abs(negSum/total), 3),
		Neu:      scalar.Round(math.Abs(float64(neuCount)/total), 3),
		Pos:      scalar.Round(math.Abs(posSum/total), 3),
		Compound: scalar.Round(compound, 4),
	}
}
