package lookup

import (
	"math"
	"regexp"
)

// words that never make a good index key
var badPosTerms = map[string]bool{
	"about": true, "across": true, "after": true, "against": true, "all": true, "along": true, "and": true,
	"any": true, "around": true, "at": true, "away": true, "back": true, "before": true, "behind": true,
	"below": true, "beneath": true, "beside": true, "besides": true, "between": true, "beyond": true, "both": true,
	"but": true, "by": true, "can": true, "could": true, "down": true, "during": true,
	"eight": true, "except": true, "five": true, "for": true, "four": true, "from": true,
	"half": true, "he": true, "hers": true, "his": true, "how": true, "however": true, "i": true, "in": true,
	"inside": true, "into": true, "it": true, "its": true, "like": true, "may": true, "might": true, "mine": true,
	"must": true, "my": true, "near": true, "nine": true, "none": true, "nor": true, "of": true, "off": true,
	"on": true, "one": true, "or": true, "our": true, "ours": true, "out": true, "over": true,
	"seven": true, "she": true, "should": true, "since": true, "six": true, "so": true, "some": true,
	"ten": true, "that": true, "the": true, "theirs": true, "there": true, "these": true, "this": true, "those": true,
	"three": true, "through": true, "to": true, "toward": true, "two": true,
	"under": true, "until": true, "up": true, "upon": true, "what": true, "when": true,
	"where": true, "which": true, "who": true, "whom": true, "will": true, "with": true, "without": true, "would": true,
	"yet": true, "you": true, "yours": true, "zero": true,
}

var hasLetter = regexp.MustCompile(`\pL`)

func isRarableToken(token *string) bool {
	if len(*token) <= 1 {
		return false
	}

	if !hasLetter.MatchString(*token) {
		return false
	}

	return !badPosTerms[*token]
}

func createKeywordIndex(terms []*KeywordTerm) KeywordIndex {
	countMap := createTokenCountMap(terms)

	index := make(KeywordIndex)
	for _, term := range terms {
		fillRareWord(term, countMap)
		rareWord := term.GetRareWord()
		index[rareWord] = append(index[rareWord], term)
	}
	return index
}

func createTokenCountMap(terms []*KeywordTerm) map[*string]int {
	countMap := make(map[*string]int)

	for _, term := range terms {
		for _, token := range term.Tokens {
			if isRarableToken(token) {
				countMap[token]++
			}
		}
	}

	return countMap
}

func fillRareWord(term *KeywordTerm, countMap map[*string]int) {
	if len(term.Tokens) <= 1 {
		return
	}

	var rareIndex byte = 0
	var minCount = math.MaxInt32
	for i, word := range term.Tokens {
		cnt, ok := countMap[word]
		if !ok {
			continue
		}

		if cnt < minCount {
			minCount = cnt
			rareIndex = byte(i)
		}
	}

	term.RareWordIndex = rareIndex
}
