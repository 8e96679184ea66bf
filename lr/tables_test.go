package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestTableShape is spec §8 property 7: ACTION.rows = GOTO.rows = n_states;
// ACTION.cols = n_terminals; GOTO.cols = n_non_terminals - 1.
func TestTableShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	ag := exprGrammar(t).ToAugmentedGrammar()
	automaton, err := BuildLR0Automaton(ag)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	table, err := BuildTables(automaton)
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}

	if got := table.NStates(); got != len(automaton.States) {
		t.Errorf("NStates() = %d, want %d", got, len(automaton.States))
	}
	if got := len(table.Terminals); got != len(ag.Terminals()) {
		t.Errorf("len(Terminals) = %d, want %d", got, len(ag.Terminals()))
	}
	if got := len(table.NonTerminals) - 1; got != len(table.goTo[0]) {
		t.Errorf("GOTO column count = %d, want %d", len(table.goTo[0]), got)
	}
}

// TestAcceptCell is spec §8 property 6: the accepting state's ACTION[$] is
// accept.
func TestAcceptCell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	ag := exprGrammar(t).ToAugmentedGrammar()
	automaton, err := BuildLR0Automaton(ag)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	table, err := BuildTables(automaton)
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}

	acc := automaton.AcceptingState()
	if acc == nil {
		t.Fatalf("no accepting state found")
	}
	cell := table.ActionAt(acc.ID, NewSymbol(EndSymbolName))
	if cell.IsEmpty() || cell.Actions[0].Kind != AcceptKind {
		t.Errorf("ACTION[%d][$] = %v, want accept", acc.ID, cell)
	}
}

// TestConflictCellSoundness is spec §8 property 8, directional half: every
// state the validator flags in this grammar has at least one conflicting
// ACTION cell in the derived table (its flagged states pair a shift with a
// reduce, and the reduce is written into every terminal column, so it lands
// on the shift's column too). This does not hold for every grammar: a state
// flagged only for an accept next to a shift, like the expression grammar's
// accepting state, has accept on $ and the shift on another column.
func TestConflictCellSoundness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	b := NewGrammarBuilder("G")
	b.LHS("cycle").T("id").T("+").T("id").End()
	b.LHS("cycle").N("factor").End()
	b.LHS("factor").T("(").N("cycle").T(")").End()
	b.LHS("factor").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}

	automaton, err := BuildLR0Automaton(g)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	table, err := BuildTables(automaton)
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}

	diags := Conflicts(ValidateLR0(automaton))
	if len(diags) == 0 {
		t.Fatalf("expected at least one conflicting state in this grammar")
	}

	for _, d := range diags {
		hasConflictCell := false
		for _, sym := range table.Terminals {
			if table.ActionAt(d.State.ID, sym).IsConflict() {
				hasConflictCell = true
			}
		}
		if !hasConflictCell {
			t.Errorf("state %d: validator reported a conflict but no ACTION cell conflicts", d.State.ID)
		}
	}
}
