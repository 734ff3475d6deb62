package negation

import (
	"text2phenotype.com/absa/fsm"
)

func getNominalNegIndicatorMachine() fsm.Machine {

	const (
		// states
		startState  = "START"
		endState    = "END"
		ntEndState  = "NON TERMINAL END"
		negDetState = "NEG_DET"
	)

	negDetC := fsm.NewWordSetCondition(getNegDeterminers())

	return fsm.Machine{
		startState: []fsm.MachineRule{
			{Cond: negDetC, Dst: negDetState},
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		negDetState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: ntEndState},
		},
		ntEndState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: endState},
		},
	}
}

// "lack of", "free of", "devoid of"
func getCollocationNegIndicatorMachine() fsm.Machine {

	const (
		// states
		startState      = "START"
		endState        = "END"
		ntEndState      = "NON TERMINAL END"
		negCollocState  = "NEG_COLLOC"
		negColPartState = "NEG_COLPART"
	)

	negCollocC := fsm.NewLemmaSetCondition(getNegCollocHeads())
	negColPartC := fsm.NewWordSetCondition(getNegCollocParts())

	return fsm.Machine{
		startState: []fsm.MachineRule{
			{Cond: negCollocC, Dst: negCollocState},
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		negCollocState: []fsm.MachineRule{
			{Cond: negColPartC, Dst: negColPartState},
			{Cond: negCollocC, Dst: negCollocState},
			{Cond: fsm.AnyCondition, Dst: startState},
		},
		negColPartState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: ntEndState},
		},
		ntEndState: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: endState},
		},
	}
}
