package fsm

import (
	"fmt"

	"text2phenotype.com/absa/types"
)

type MachineRule struct {
	Dst  string
	Cond Condition
}

// Machine maps a state to its ordered transitions. A token that matches no
// rule keeps the current state.
type Machine map[string][]MachineRule

func (fsm Machine) Input(token types.HasSpan, currentState string) string {
	rules, isOk := fsm[currentState]
	if !isOk {
		panic(fmt.Errorf("wrong rule: there is no transitions from '%s' state", currentState))
	}

	for _, rule := range rules {
		if rule.Cond(token) {
			return rule.Dst
		}
	}

	return currentState
}
