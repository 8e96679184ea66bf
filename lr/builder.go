package lr

// FromRules builds a Grammar by scanning rules once (spec §4.1):
//
//  1. the set of lhs symbols becomes the non-terminals;
//  2. rules are walked in order, and for each rule its lhs then each rhs
//     symbol is recorded into an ordered first-seen list, split into
//     non-terminals (members of the lhs set) and terminals (everything
//     else) — this fixes table column assignment and must stay
//     deterministic;
//  3. start is the lhs of the first rule.
//
// FromRules returns ErrEmptyRules when rules is empty.
func FromRules(rules []Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, &GrammarError{Kind: EmptyRules}
	}

	lhsSet := make(map[string]bool, len(rules))
	for _, r := range rules {
		lhsSet[r.LHS.Name] = true
	}

	terminals := newSymbolSet()
	nonterminals := newSymbolSet()
	for _, r := range rules {
		recordSymbol(r.LHS, lhsSet, terminals, nonterminals)
		for _, sym := range r.RHS {
			recordSymbol(sym, lhsSet, terminals, nonterminals)
		}
	}

	cp := make([]Rule, len(rules))
	copy(cp, rules)

	return &Grammar{
		start:        rules[0].LHS,
		terminals:    terminals,
		nonterminals: nonterminals,
		rules:        cp,
	}, nil
}

func recordSymbol(sym Symbol, lhsSet map[string]bool, terminals, nonterminals *symbolSet) {
	if terminals.has(sym) || nonterminals.has(sym) {
		return
	}
	if lhsSet[sym.Name] {
		nonterminals.add(sym)
	} else {
		terminals.add(sym)
	}
}

// ToAugmentedGrammar returns a new grammar extended with a fresh start
// symbol S' and rule S' -> S (spec §4.1 "Augmentation"). It never mutates g:
// the original grammar's backing storage is left untouched, and the returned
// grammar owns freshly allocated slices so it can outlive any borrowed view
// on g (spec §9 "Ownership transitions").
//
// Augmenting an already-augmented grammar is a no-op that returns an
// equivalent copy; it is not an error, since idempotency is cheaper to reason
// about than a fresh error variant for a harmless re-augmentation.
func (g *Grammar) ToAugmentedGrammar() *Grammar {
	if g.isAugmented {
		return g.clone()
	}

	startSym := NewSymbol(StartSymbolName)
	endSym := NewSymbol(EndSymbolName)

	nonterminals := newSymbolSet()
	nonterminals.add(startSym)
	for _, nt := range g.nonterminals.order {
		nonterminals.add(nt)
	}

	terminals := newSymbolSet()
	for _, t := range g.terminals.order {
		terminals.add(t)
	}
	terminals.add(endSym)

	startRule := NewRule(startSym, g.start)
	rules := make([]Rule, 0, len(g.rules)+1)
	rules = append(rules, startRule)
	rules = append(rules, g.rules...)

	return &Grammar{
		name:         g.name,
		start:        startSym,
		terminals:    terminals,
		nonterminals: nonterminals,
		rules:        rules,
		isAugmented:  true,
	}
}

// clone makes a deep-enough copy of g that mutating the copy's slices cannot
// affect g.
func (g *Grammar) clone() *Grammar {
	terminals := newSymbolSet()
	for _, t := range g.terminals.order {
		terminals.add(t)
	}
	nonterminals := newSymbolSet()
	for _, nt := range g.nonterminals.order {
		nonterminals.add(nt)
	}
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return &Grammar{
		name:         g.name,
		start:        g.start,
		terminals:    terminals,
		nonterminals: nonterminals,
		rules:        rules,
		isAugmented:  g.isAugmented,
	}
}

// --- Fluent builder ---------------------------------------------------------
//
// GrammarBuilder mirrors the teacher corpus's fluent grammar-construction
// idiom (lr.NewGrammarBuilder(name).LHS("S").N("A").T("a").End()). Unlike
// that corpus, N and T are equivalent here — classification is always
// derived from lhs membership (spec §4.1) rather than tagged by the caller —
// they exist only so grammars read the way a textbook production would.

// GrammarBuilder accumulates rules for a single grammar.
type GrammarBuilder struct {
	name  string
	rules []Rule
	lhs   Symbol
	rhs   []Symbol
	open  bool
}

// NewGrammarBuilder creates a builder for a grammar named name (used only for
// diagnostics).
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// LHS starts a new rule with the given left-hand side. A previously open rule
// (one with no terminating End()) is discarded.
func (b *GrammarBuilder) LHS(name string) *GrammarBuilder {
	b.lhs = NewSymbol(name)
	b.rhs = nil
	b.open = true
	return b
}

// N appends a right-hand-side symbol, suggesting (but not enforcing) that it
// is a non-terminal.
func (b *GrammarBuilder) N(name string) *GrammarBuilder {
	b.rhs = append(b.rhs, NewSymbol(name))
	return b
}

// T appends a right-hand-side symbol, suggesting (but not enforcing) that it
// is a terminal.
func (b *GrammarBuilder) T(name string) *GrammarBuilder {
	b.rhs = append(b.rhs, NewSymbol(name))
	return b
}

// End finalizes the rule started by the most recent LHS call and appends it
// to the builder's rule list. Calling End with no rhs symbols panics: this
// package does not support ε-rules (spec §1 Non-goals).
func (b *GrammarBuilder) End() *GrammarBuilder {
	if !b.open {
		return b
	}
	if len(b.rhs) == 0 {
		panic("lr: GrammarBuilder.End called with an empty right-hand side; ε-rules are not supported")
	}
	b.rules = append(b.rules, NewRule(b.lhs, b.rhs...))
	b.open = false
	return b
}

// Rules returns the rules accumulated so far, in declaration order.
func (b *GrammarBuilder) Rules() []Rule {
	out := make([]Rule, len(b.rules))
	copy(out, b.rules)
	return out
}

// Grammar builds the final Grammar from the accumulated rules via FromRules.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	g, err := FromRules(b.rules)
	if err != nil {
		return nil, err
	}
	g.name = b.name
	return g, nil
}
