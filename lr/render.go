package lr

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders an action cell as spec §6 prescribes: "sN", "rN", "acc",
// "sN/rN" for conflicts (slash-joined in write order), or "-" for empty.
func (c ActionCell) String() string {
	if c.IsEmpty() {
		return "-"
	}
	codes := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		codes[i] = a.String()
	}
	return strings.Join(codes, "/")
}

func (a TableAction) String() string {
	switch a.Kind {
	case ShiftKind:
		return "s" + strconv.Itoa(a.Target)
	case ReduceKind:
		return "r" + strconv.Itoa(a.Target)
	case AcceptKind:
		return "acc"
	}
	return "?"
}

// String renders the full table pair: one header row per terminal then per
// non-terminal (excluding S'), rows keyed by state id (spec §6 "Textual
// rendering"). Each ACTION cell uses ActionCell.String; empty GOTO cells
// print "-".
func (t *ParsingTable) String() string {
	var b strings.Builder

	b.WriteString("state")
	for _, sym := range t.Terminals {
		fmt.Fprintf(&b, "\t%s", sym.Name)
	}
	for _, sym := range t.NonTerminals[1:] { // drop S'
		fmt.Fprintf(&b, "\t%s", sym.Name)
	}
	b.WriteByte('\n')

	for state := 0; state < t.NStates(); state++ {
		fmt.Fprintf(&b, "%d", state)
		for col := range t.Terminals {
			fmt.Fprintf(&b, "\t%s", t.action[state][col].String())
		}
		for col := range t.goTo[state] {
			v := t.goTo[state][col]
			if v < 0 {
				b.WriteString("\t-")
			} else {
				fmt.Fprintf(&b, "\t%d", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders every state of the automaton in turn (spec §6), each
// state's own String already covering its items and transitions.
func (a *Automaton) String() string {
	var b strings.Builder
	for _, s := range a.States {
		b.WriteString(s.String())
	}
	return b.String()
}
