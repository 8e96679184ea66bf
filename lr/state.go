package lr

import (
	"strconv"
	"strings"
)

// Transition is a directed edge (From -> To) on Symbol between two CFSM
// states, identified by their IDs (spec §3).
type Transition struct {
	From   int
	To     int
	Symbol Symbol
}

// State is a node of the LR(0) characteristic finite-state machine: an
// ordered, deduplicated item set plus its outgoing transitions (spec §3).
//
// ID is a contiguous index assigned at insertion time and doubles as the row
// index into the ACTION/GOTO tables. Two states with identical item sets are
// the same state regardless of ID — Automaton enforces this by deduplicating
// on itemSet.canonicalKey before ever allocating a new ID.
type State struct {
	ID          int
	Items       []Item
	Transitions []Transition
}

// TransitionOn returns the target state ID for an outgoing transition on
// sym, if any. Outgoing transitions are pairwise distinct by symbol (spec
// §3), so there is at most one.
func (st *State) TransitionOn(sym Symbol) (int, bool) {
	for _, t := range st.Transitions {
		if t.Symbol == sym {
			return t.To, true
		}
	}
	return 0, false
}

// CompleteItems returns the subset of st.Items whose dot has reached the end
// of the rule's rhs, in the same relative order.
func (st *State) CompleteItems() []Item {
	var out []Item
	for _, it := range st.Items {
		if it.IsComplete() {
			out = append(out, it)
		}
	}
	return out
}

// String renders the state as "State {id}" followed by its items, one per
// line, then its transitions (spec §6 "Textual rendering").
func (st *State) String() string {
	var b strings.Builder
	b.WriteString("State ")
	b.WriteString(strconv.Itoa(st.ID))
	b.WriteByte('\n')
	for _, it := range st.Items {
		b.WriteString("  ")
		b.WriteString(it.String())
		b.WriteByte('\n')
	}
	for _, t := range st.Transitions {
		b.WriteString("  --")
		b.WriteString(t.Symbol.Name)
		b.WriteString("--> State ")
		b.WriteString(strconv.Itoa(t.To))
		b.WriteByte('\n')
	}
	return b.String()
}
