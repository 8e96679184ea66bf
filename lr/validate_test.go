package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestValidateShiftReduceConflict is spec S2.
func TestValidateShiftReduceConflict(t *testing.T) {
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

	diags := Conflicts(ValidateLR0(automaton))
	found := false
	for _, d := range diags {
		if errorsIsKind(d.Err, ShiftReduceConflict) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ShiftReduceConflict, got diagnostics: %v", diags)
	}
}

// TestValidateReduceReduceConflict is spec S3.
func TestValidateReduceReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").T("c").End()
	b.LHS("B").T("c").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}

	automaton, err := BuildLR0Automaton(g)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}

	diags := Conflicts(ValidateLR0(automaton))
	found := false
	for _, d := range diags {
		if errorsIsKind(d.Err, ReduceReduceConflict) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ReduceReduceConflict, got diagnostics: %v", diags)
	}
}

// TestValidateConflictFreeGrammar exercises a genuinely LR(0) grammar and
// expects a clean validation pass.
func TestValidateConflictFreeGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").N("B").T("x").End()
	b.LHS("B").T("y").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}

	automaton, err := BuildLR0Automaton(g)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}

	if diags := Conflicts(ValidateLR0(automaton)); len(diags) != 0 {
		t.Errorf("expected no conflicts, got %v", diags)
	}
}
