package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// TestAugmentationCounts is spec S4: augmentation adds exactly one rule,
// one non-terminal (S') and one terminal ($).
func TestAugmentationCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	g := exprGrammar(t)
	k := len(g.Rules())
	n := len(g.NonTerminals())
	tc := len(g.Terminals())

	ag := g.ToAugmentedGrammar()
	if got := len(ag.Rules()); got != k+1 {
		t.Errorf("rule count = %d, want %d", got, k+1)
	}
	if got := len(ag.NonTerminals()); got != n+1 {
		t.Errorf("non-terminal count = %d, want %d", got, n+1)
	}
	if got := len(ag.Terminals()); got != tc+1 {
		t.Errorf("terminal count = %d, want %d", got, tc+1)
	}
}

// TestStartSymbolValidation is spec S5.
func TestStartSymbolValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	t.Run("not found in rules", func(t *testing.T) {
		g, err := FromRules([]Rule{NewRule(NewSymbol("A"), NewSymbol("a"))})
		if err != nil {
			t.Fatalf("FromRules: %v", err)
		}
		g.start = NewSymbol("NoSuchRule")
		if err := g.Validate(); !errorsIsKind(err, StartSymbolNotFoundInRules) {
			t.Errorf("Validate() = %v, want StartSymbolNotFoundInRules", err)
		}
	})

	t.Run("start is a terminal", func(t *testing.T) {
		g, err := FromRules([]Rule{NewRule(NewSymbol("A"), NewSymbol("a"))})
		if err != nil {
			t.Fatalf("FromRules: %v", err)
		}
		g.start = NewSymbol("a") // classified as a terminal above
		if err := g.Validate(); !errorsIsKind(err, StartSymbolIsNotNonTerminal) {
			t.Errorf("Validate() = %v, want StartSymbolIsNotNonTerminal", err)
		}
	})
}

// TestEmptyRulesRejected is spec S6.
func TestEmptyRulesRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	_, err := FromRules([]Rule{})
	if !errorsIsKind(err, EmptyRules) {
		t.Errorf("FromRules([]) = %v, want EmptyRules", err)
	}
}

func TestGrammarBuilderEndPanicsOnEmptyRHS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.lr")
	defer teardown()

	defer func() {
		if recover() == nil {
			t.Errorf("expected End() to panic on an empty right-hand side")
		}
	}()
	NewGrammarBuilder("G").LHS("S").End()
}
