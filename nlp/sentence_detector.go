package nlp

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"text2phenotype.com/absa/types"
)

type SentenceDetector func(in <-chan string) <-chan types.Sentence

type SentenceSplitter func(text string) []types.Sentence

var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)

// NewSentenceSplitter builds a punkt splitter. The bundled English model is
// used when trainingPath is empty.
func NewSentenceSplitter(trainingPath string) (SentenceSplitter, error) {
	var tokenizer *sentences.DefaultSentenceTokenizer
	if trainingPath == "" {
		var err error
		tokenizer, err = english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(trainingPath)
		if err != nil {
			return nil, err
		}
		training, err := sentences.LoadTraining(data)
		if err != nil {
			return nil, err
		}
		tokenizer = sentences.NewSentenceTokenizer(training)
	}

	return func(text string) []types.Sentence {
		var result []types.Sentence
		offsets := newRuneOffsets(text)

		paragraphStart := 0
		for _, brk := range append(paragraphBreak.FindAllStringIndex(text, -1), []int{len(text), len(text)}) {
			paragraph := text[paragraphStart:brk[0]]
			cursor := 0
			for _, s := range tokenizer.Tokenize(paragraph) {
				trimmed := strings.TrimSpace(s.Text)
				if len(trimmed) == 0 {
					continue
				}
				idx := strings.Index(paragraph[cursor:], trimmed)
				if idx < 0 {
					continue
				}
				begin := paragraphStart + cursor + idx
				end := begin + len(trimmed)
				cursor += idx + len(trimmed)

				sentText := text[begin:end]
				result = append(result, types.Sentence{
					Span: types.Span{
						Begin: offsets.runeOffset(begin),
						End:   offsets.runeOffset(end),
						Text:  &sentText,
					},
				})
			}
			paragraphStart = brk[1]
		}
		return result
	}, nil
}

// NewSentenceDetector returns the channel stage over NewSentenceSplitter.
func NewSentenceDetector(trainingPath string) (SentenceDetector, error) {
	split, err := NewSentenceSplitter(trainingPath)
	if err != nil {
		return nil, err
	}

	return func(in <-chan string) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			defer close(out)
			for text := range in {
				if len(text) == 0 {
					continue
				}
				for _, sent := range split(text) {
					out <- sent
				}
			}
		}()

		return out
	}, nil
}

type runeOffsets struct {
	text      string
	lastByte  int
	lastRunes int32
}

func newRuneOffsets(text string) *runeOffsets {
	return &runeOffsets{text: text}
}

// runeOffset converts a byte offset, offsets must be requested in ascending order.
func (ro *runeOffsets) runeOffset(byteOffset int) int32 {
	if byteOffset < ro.lastByte {
		ro.lastByte, ro.lastRunes = 0, 0
	}
	ro.lastRunes += int32(utf8.RuneCountInString(ro.text[ro.lastByte:byteOffset]))
	ro.lastByte = byteOffset
	return ro.lastRunes
}
