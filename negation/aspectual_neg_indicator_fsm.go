package negation

import (
	"text2phenotype.com/absa/fsm"
)

// auxiliary + particle ("is not", "don't"), a bare particle ("never") or a
// negative verb ("lacks") followed by one more word.
func getAspectualNegIndicatorMachine() fsm.Machine {

	const (
		// states
		startState   = "START"
		endState     = "END"
		anyState     = "ANY"
		ntEndState   = "NON TERMINAL END"
		auxState     = "AUX"
		negPartState = "NEG_PART"
		negVerbState = "NEG_VERB"
	)

	auxC := fsm.NewWordSetCondition(getAuxiliaries())
	negPartC := fsm.NewWordSetCondition(getNegParticles())
	negVerbC := fsm.NewWordSetCondition(getNegVerbs())
	breakerC := fsm.NewWordSetCondition(getNegBreakers())

	return fsm.Machine{
		startState: []fsm.MachineRule{
			{Cond: negVerbC, Dst: negVerbState},
			{Cond: auxC, Dst: auxState},
			{Cond: negPartC, Dst: negPartState},
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		auxState: []fsm.MachineRule{
			{Cond: negPartC, Dst: negPartState},
			{Cond: auxC, Dst: auxState},
			{Cond: fsm.AnyCondition, Dst: anyState},
		},
		anyState: []fsm.MachineRule{
			{Cond: negPartC, Dst: negPartState},
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		negPartState: []fsm.MachineRule{
			{Cond: breakerC, Dst: startState},
			{Cond: fsm.AnyCondition, Dst: ntEndState},
		},
		negVerbState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: ntEndState},
		},
		endState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		ntEndState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: endState},
		},
	}
}
