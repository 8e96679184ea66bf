package lr

// TableAction is one entry written into an ACTION cell: a shift to Target
// (a state id), a reduce of rule Target (a rule index), or an accept, which
// ignores Target (spec §4.5).
type TableAction struct {
	Kind   ActionKind
	Target int
}

// ActionCell is the contents of one ACTION[state][terminal] slot. Zero or
// more TableActions may occupy it: zero means "error at runtime", one means
// an unambiguous action, and more than one is a conflict cell (spec §3
// "ACTION cell", §4.5 "Conflict cells"). Per the resolution of spec §9 Open
// Question 3, conflicts accumulate as a set of arbitrary size rather than
// silently overwriting a second slot.
type ActionCell struct {
	Actions []TableAction
}

// IsEmpty reports whether no action was ever written to this cell.
func (c ActionCell) IsEmpty() bool { return len(c.Actions) == 0 }

// IsConflict reports whether two or more distinct actions were written.
func (c ActionCell) IsConflict() bool { return len(c.Actions) > 1 }

// ParsingTable holds the dense ACTION and GOTO tables derived from an LR(0)
// automaton (spec §3, §4.5). Rows are state ids for both tables; ACTION
// columns are Terminals (in the grammar's terminal order, $ included);
// GOTO columns are NonTerminals with the augmented S' column dropped, since
// it is never a GOTO target at runtime.
type ParsingTable struct {
	Grammar      *Grammar
	Terminals    []Symbol
	NonTerminals []Symbol // S' at index 0; GOTO columns skip it

	action [][]ActionCell // [state][terminal column]
	goTo   [][]int        // [state][non-terminal column]; -1 = no entry
}

// NStates returns the number of automaton states the table was built for.
func (t *ParsingTable) NStates() int { return len(t.action) }

// ActionAt returns the ACTION cell for (state, terminal).
func (t *ParsingTable) ActionAt(state int, terminal Symbol) ActionCell {
	col, ok := t.Grammar.TerminalColumn(terminal)
	if !ok {
		return ActionCell{}
	}
	return t.action[state][col]
}

// GotoAt returns the GOTO target for (state, nonTerminal), or (0, false) if
// the cell is empty or nonTerminal is S' (which has no GOTO column).
func (t *ParsingTable) GotoAt(state int, nonTerminal Symbol) (int, bool) {
	idx, ok := t.Grammar.NonTerminalIndex(nonTerminal)
	if !ok || idx == 0 { // idx 0 is always S'
		return 0, false
	}
	v := t.goTo[state][idx-1]
	if v < 0 {
		return 0, false
	}
	return v, true
}

// BuildTables derives the dense ACTION/GOTO tables for automaton a (spec
// §4.5). a.Grammar must be augmented; BuildLR0Automaton guarantees this.
func BuildTables(a *Automaton) (*ParsingTable, error) {
	g := a.Grammar
	terminals := g.Terminals()
	nonTerminals := g.NonTerminals()
	gotoCols := len(nonTerminals) - 1 // drop S'

	t := &ParsingTable{
		Grammar:      g,
		Terminals:    terminals,
		NonTerminals: nonTerminals,
		action:       make([][]ActionCell, len(a.States)),
		goTo:         make([][]int, len(a.States)),
	}
	for i := range a.States {
		t.action[i] = make([]ActionCell, len(terminals))
		t.goTo[i] = make([]int, gotoCols)
		for j := range t.goTo[i] {
			t.goTo[i][j] = -1
		}
	}

	for _, s := range a.States {
		// Step 1: every outgoing transition (shifts land in ACTION, the rest
		// land in GOTO). Shifts are written before reduces so a conflict
		// cell always orders shift first (spec §4.5 "Ordering").
		for _, tr := range s.Transitions {
			if g.IsTerminal(tr.Symbol) {
				col, _ := g.TerminalColumn(tr.Symbol)
				t.writeAction(s.ID, col, TableAction{Kind: ShiftKind, Target: tr.To})
				continue
			}
			idx, _ := g.NonTerminalIndex(tr.Symbol)
			t.goTo[s.ID][idx-1] = tr.To
		}

		// Step 2: every complete item either accepts or reduces across the
		// full terminal row (spec §4.5 step 2; SLR-style FOLLOW restriction
		// is explicitly out of scope per spec §9 Open Question 2).
		for _, it := range s.CompleteItems() {
			if it.Action == AcceptKind {
				col, _ := g.TerminalColumn(NewSymbol(EndSymbolName))
				t.writeAction(s.ID, col, TableAction{Kind: AcceptKind})
				continue
			}
			r := g.RuleIndex(it.Rule)
			for col := range terminals {
				t.writeAction(s.ID, col, TableAction{Kind: ReduceKind, Target: r})
			}
		}
	}
	return t, nil
}

func (t *ParsingTable) writeAction(state, col int, a TableAction) {
	c := &t.action[state][col]
	c.Actions = append(c.Actions, a)
}
