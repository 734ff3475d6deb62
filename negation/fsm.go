package negation

import (
	"text2phenotype.com/absa/fsm"
	"text2phenotype.com/absa/types"
)

type NegationFSM func(tokens []*types.Token) bool

// NewNegationFSM runs every cue machine over the tokens and reports whether
// any of them reached an end state.
func NewNegationFSM() NegationFSM {

	const (
		// states
		startState = "START"
		endState   = "END"
		ntEndState = "NON TERMINAL END"
	)

	machines := []fsm.Machine{
		getAspectualNegIndicatorMachine(),
		getNominalNegIndicatorMachine(),
		getCollocationNegIndicatorMachine(),
	}

	return func(tokens []*types.Token) bool {
		machineStates := make([]string, len(machines))
		for n := 0; n < len(machines); n++ {
			machineStates[n] = startState
		}

		for _, token := range tokens {
			for machineIdx, machine := range machines {
				currentState := machine.Input(token, machineStates[machineIdx])
				machineStates[machineIdx] = currentState

				if currentState == endState || currentState == ntEndState {
					return true
				}
			}
		}
		return false
	}
}
