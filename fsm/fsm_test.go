package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"text2phenotype.com/absa/types"
)

func word(text string) *types.Token {
	return &types.Token{Span: types.Span{Text: &text}, IsWord: true}
}

func TestMachineInput(t *testing.T) {
	const (
		start = "START"
		neg   = "NEG"
		end   = "END"
	)
	machine := Machine{
		start: {
			{Cond: NewWordSetCondition(map[string]bool{"not": true}), Dst: neg},
			{Cond: AnyCondition, Dst: start},
		},
		neg: {
			{Cond: NewTextValueCondition("only"), Dst: start},
			{Cond: AnyCondition, Dst: end},
		},
	}

	state := machine.Input(word("NOT"), start)
	require.Equal(t, neg, state)
	require.Equal(t, start, machine.Input(word("Only"), state))
	require.Equal(t, end, machine.Input(word("good"), state))

	require.Panics(t, func() {
		machine.Input(word("x"), end)
	})
}

func TestConditions(t *testing.T) {
	lemma := "lack"
	token := word("Lacks")
	token.Lemma = &lemma
	token.Pos = "VERB"

	require.True(t, NewLemmaSetCondition(map[string]bool{"lack": true})(token))
	require.False(t, NewWordSetCondition(map[string]bool{"lack": true})(token))
	require.True(t, NewPosCondition("NOUN", "VERB")(token))
	require.False(t, NewPosCondition("NOUN")(token))

	comma := ","
	punct := &types.Token{Span: types.Span{Text: &comma}, IsPunct: true}
	require.True(t, NewPunctuationValueCondition(',')(punct))
	require.False(t, NewPunctuationValueCondition('.')(punct))

	both := NewCombineCondition(NewPosCondition("VERB"), NewNegateCondition(NumberCondition))
	require.True(t, both(token))
	either := NewDisjointCondition(NumberCondition, NewPosCondition("ADJ"))
	require.False(t, either(token))
}
