package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("expr")
	b.LHS("exp").N("exp").T("+").N("term").End()
	b.LHS("exp").N("term").End()
	b.LHS("term").N("term").T("*").N("factor").End()
	b.LHS("term").N("factor").End()
	b.LHS("factor").T("(").N("exp").T(")").End()
	b.LHS("factor").T("number").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building expr grammar: %v", err)
	}
	return g
}

func TestFromRulesEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	_, err := FromRules(nil)
	if err == nil {
		t.Fatalf("expected ErrEmptyRules, got nil")
	}
	if !errorsIsKind(err, EmptyRules) {
		t.Errorf("expected EmptyRules, got %v", err)
	}
}

func TestFromRulesClassifiesSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	g := exprGrammar(t)

	wantTerms := []string{"+", "*", "(", ")", "number"}
	if got := len(g.Terminals()); got != len(wantTerms) {
		t.Fatalf("terminals = %v, want %d symbols", g.Terminals(), len(wantTerms))
	}
	for _, name := range wantTerms {
		if !g.IsTerminal(NewSymbol(name)) {
			t.Errorf("%q should be classified as a terminal", name)
		}
	}

	wantNonTerms := []string{"exp", "term", "factor"}
	for _, name := range wantNonTerms {
		if !g.IsNonTerminal(NewSymbol(name)) {
			t.Errorf("%q should be classified as a non-terminal", name)
		}
	}
}

func TestAugmentationIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	g := exprGrammar(t)
	once := g.ToAugmentedGrammar()
	twice := once.ToAugmentedGrammar()

	if len(once.Rules()) != len(twice.Rules()) {
		t.Fatalf("augmenting an augmented grammar changed rule count: %d vs %d",
			len(once.Rules()), len(twice.Rules()))
	}
	if !once.Start().IsStart() || !twice.Start().IsStart() {
		t.Errorf("expected both grammars' start symbol to be S'")
	}
}

func TestValidateStructureDetectsUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("Dead").T("b").End() // never referenced
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}

	errs := g.ValidateStructure()
	found := false
	for _, e := range errs {
		if errorsIsKind(e, UnreachableNonTerminal) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an UnreachableNonTerminal error for Dead, got %v", errs)
	}
}

func errorsIsKind(err error, kind ErrorKind) bool {
	ge, ok := err.(*GrammarError)
	return ok && ge.Kind == kind
}
