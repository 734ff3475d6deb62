package negation

import (
	"text2phenotype.com/absa/types"
)

type ContextAnalyzer interface {
	IsBoundary(token *types.Token) bool
	AnalyzeContext(tokens []*types.Token) bool
}

func NewNegationContextAnalyzer(boundaries map[string]bool) ContextAnalyzer {
	return negationContextAnalyzer{
		boundaryWordSet: boundaries,
		negationFSM:     NewNegationFSM(),
	}
}

type negationContextAnalyzer struct {
	boundaryWordSet map[string]bool
	negationFSM     NegationFSM
}

func (analyzer negationContextAnalyzer) IsBoundary(token *types.Token) bool {
	return token.IsNewline || analyzer.boundaryWordSet[token.Lower()]
}

func (analyzer negationContextAnalyzer) AnalyzeContext(tokens []*types.Token) bool {
	return analyzer.negationFSM(tokens)
}
