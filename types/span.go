package types

import (
	"fmt"

	"text2phenotype.com/absa/utils"
)

type HasSpan interface {
	GetSpan() *Span
}

// Span offsets are rune offsets into the document text.
type Span struct {
	Begin int32
	End   int32
	Text  *string
}

func CheckSpansOverlap(covered *Span, covering *Span) bool {
	return covering.Begin <= covered.Begin && covering.End >= covered.End
}

// SpansIntersect is true when the spans share at least one rune.
func SpansIntersect(a *Span, b *Span) bool {
	return a.Begin < b.End && b.Begin < a.End
}

func (span Span) GetHashCode() uint64 {
	key := fmt.Sprintf("%d_%d", span.Begin, span.End)
	return utils.HashString(key)
}

func (span Span) Len() int32 {
	return span.End - span.Begin
}

func (span Span) GetTextFromSentence(sent *Sentence) (string, bool) {
	if span.Begin < sent.Begin || span.End > sent.End || span.Begin > span.End {
		return "", false
	}

	localBegin := span.Begin - sent.Begin
	localEnd := span.End - sent.Begin

	runes := []rune(*sent.Text)
	if int(localEnd) > len(runes) {
		return "", false
	}
	return string(runes[localBegin:localEnd]), true
}

type Spans []HasSpan

func (spans Spans) Len() int {
	return len(spans)
}

func (spans Spans) Less(i int, j int) bool {
	return SpanSortFunction(spans[i].GetSpan(), spans[j].GetSpan())
}

func (spans Spans) Swap(i int, j int) {
	spans[i], spans[j] = spans[j], spans[i]
}

func SpanSortFunction(spanA *Span, spanB *Span) bool {
	if spanA.Begin == spanB.Begin {
		return spanA.End < spanB.End
	}
	return spanA.Begin < spanB.Begin
}
