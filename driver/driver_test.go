package driver

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	lr0gen "github.com/go-lrtools/lr0gen"
	"github.com/go-lrtools/lr0gen/lr"
	gscanner "github.com/go-lrtools/lr0gen/scanner"
)

// conflictFreeGrammar builds S -> A, A -> B x, B -> y, an unambiguous LR(0)
// grammar over a two-letter alphabet, with no lookahead needed anywhere.
func conflictFreeGrammar(t *testing.T) *lr.ParsingTable {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").N("B").T("x").End()
	b.LHS("B").T("y").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("building grammar: %v", err)
	}
	automaton, err := lr.BuildLR0Automaton(g)
	if err != nil {
		t.Fatalf("BuildLR0Automaton: %v", err)
	}
	table, err := lr.BuildTables(automaton)
	if err != nil {
		t.Fatalf("BuildTables: %v", err)
	}
	return table
}

// runeTokenizer feeds one rune at a time, using the rune value itself as the
// TokType, so that single-character terminals like "x" and "y" never
// collapse into a shared Ident category the way text/scanner would.
type runeTokenizer struct {
	runes []rune
	pos   int
}

func newRuneTokenizer(s string) *runeTokenizer { return &runeTokenizer{runes: []rune(s)} }

func (r *runeTokenizer) NextToken() lr0gen.Token {
	if r.pos >= len(r.runes) {
		return gscanner.MakeDefaultToken(lr0gen.TokType(-1), "", lr0gen.Span{})
	}
	ru := r.runes[r.pos]
	r.pos++
	from := uint64(r.pos - 1)
	return gscanner.MakeDefaultToken(lr0gen.TokType(ru), string(ru), lr0gen.Span{from, from + 1})
}

func (r *runeTokenizer) SetErrorHandler(func(error)) {}

// termFor maps 'x' and 'y' to their namesake terminals, and the sentinel
// end-of-input TokType (-1) to the grammar's end symbol.
func termFor(tt lr0gen.TokType) (lr.Symbol, bool) {
	switch rune(tt) {
	case 'x':
		return lr.NewSymbol("x"), true
	case 'y':
		return lr.NewSymbol("y"), true
	}
	if tt == -1 {
		return lr.NewSymbol(lr.EndSymbolName), true
	}
	return lr.Symbol{}, false
}

// TestRunAcceptsValidSentence is spec S7: driving a valid sentence of a
// conflict-free grammar through the driver accepts it end to end.
func TestRunAcceptsValidSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.driver")
	defer teardown()

	table := conflictFreeGrammar(t)
	d := NewDriver(table, termFor)
	accepted, err := d.Run(newRuneTokenizer("yx"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !accepted {
		t.Errorf("expected %q to be accepted", "yx")
	}
}

// TestRunRejectsTruncatedSentence is the negative half of spec S7: a
// truncated token stream is rejected rather than spuriously accepted.
func TestRunRejectsTruncatedSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.driver")
	defer teardown()

	table := conflictFreeGrammar(t)
	d := NewDriver(table, termFor)
	accepted, err := d.Run(newRuneTokenizer("y")) // missing the trailing x
	if err == nil || accepted {
		t.Errorf("expected a truncated sentence to be rejected, got accepted=%v err=%v", accepted, err)
	}
}

// TestRunRejectsUnmappedTokenType is a second negative case: a token type
// termFor cannot resolve to any terminal is a hard error, not a panic or a
// silent skip.
func TestRunRejectsUnmappedTokenType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0gen.driver")
	defer teardown()

	table := conflictFreeGrammar(t)
	d := NewDriver(table, termFor)
	accepted, err := d.Run(newRuneTokenizer("z"))
	if err == nil || accepted {
		t.Errorf("expected an unmapped token type to be rejected, got accepted=%v err=%v", accepted, err)
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("expected a *SyntaxError, got %T", err)
	}
}
