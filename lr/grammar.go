package lr

import "fmt"

// Grammar is the tuple (start, terminals, non-terminals, rules, is_augmented)
// of spec §3. Construct one with FromRules or GrammarBuilder; the zero value
// is not useful.
//
// The order of terminals and non-terminals is significant: a symbol's index
// in its set is its column number in the ACTION/GOTO tables (spec §3, §9).
type Grammar struct {
	name         string
	start        Symbol
	terminals    *symbolSet
	nonterminals *symbolSet
	rules        []Rule
	isAugmented  bool
}

// Name returns the grammar's human-readable name (for diagnostics only).
func (g *Grammar) Name() string { return g.name }

// Start returns the grammar's start symbol.
func (g *Grammar) Start() Symbol { return g.start }

// IsAugmented reports whether this grammar went through ToAugmentedGrammar.
func (g *Grammar) IsAugmented() bool { return g.isAugmented }

// Terminals returns the terminal symbols in column order.
func (g *Grammar) Terminals() []Symbol { return g.terminals.slice() }

// NonTerminals returns the non-terminal symbols in column order (S', when
// present, is always first).
func (g *Grammar) NonTerminals() []Symbol { return g.nonterminals.slice() }

// Rules returns the grammar's rules in declaration order. rules[0] is the
// augmented start rule S' -> S once the grammar has been augmented.
func (g *Grammar) Rules() []Rule { return g.rules }

// Rule returns the i-th rule.
func (g *Grammar) Rule(i int) Rule { return g.rules[i] }

// IsTerminal reports whether sym was classified as a terminal.
func (g *Grammar) IsTerminal(sym Symbol) bool { return g.terminals.has(sym) }

// IsNonTerminal reports whether sym was classified as a non-terminal.
func (g *Grammar) IsNonTerminal(sym Symbol) bool { return g.nonterminals.has(sym) }

// TerminalColumn returns sym's column index in the terminal order, used to
// index ACTION table columns (including $, appended last by augmentation).
func (g *Grammar) TerminalColumn(sym Symbol) (int, bool) { return g.terminals.indexOf(sym) }

// NonTerminalIndex returns sym's index in the non-terminal order. Note this
// is NOT directly the GOTO column: the GOTO table excludes S' (spec §4.5), so
// GOTO column = NonTerminalIndex - 1 for an augmented grammar.
func (g *Grammar) NonTerminalIndex(sym Symbol) (int, bool) { return g.nonterminals.indexOf(sym) }

// RuleIndex returns the index of rule r within g.Rules(), comparing by rule
// identity (lhs + ordered rhs), or -1 if not found.
func (g *Grammar) RuleIndex(r Rule) int {
	for i, gr := range g.rules {
		if gr.Equal(r) {
			return i
		}
	}
	return -1
}

// RulesFor returns every rule whose lhs equals sym, in declaration order.
func (g *Grammar) RulesFor(sym Symbol) []Rule {
	var out []Rule
	for _, r := range g.rules {
		if r.LHS == sym {
			out = append(out, r)
		}
	}
	return out
}

// StartRule returns rules[0], which is the augmented start rule S' -> S.
// Returns ErrGrammarIsNotAugmented if the grammar has not been augmented
// (spec §7 "GrammarIsNotAugmented").
func (g *Grammar) StartRule() (Rule, error) {
	if !g.isAugmented {
		return Rule{}, &GrammarError{Kind: GrammarIsNotAugmented, Detail: g.name}
	}
	return g.rules[0], nil
}

func (g *Grammar) String() string {
	return fmt.Sprintf("Grammar(%s, %d rules, %d terminals, %d non-terminals)",
		g.name, len(g.rules), g.terminals.len(), g.nonterminals.len())
}

// Dump renders every rule, one per line, numbered — useful for quick
// debugging (mirrors the teacher corpus's Grammar.Dump conventions).
func (g *Grammar) Dump() string {
	s := ""
	for i, r := range g.rules {
		s += fmt.Sprintf("%d: %s\n", i, r.String())
	}
	return s
}

// --- Validation (spec §4.1 "Validation (GrammarValidator.validate)") ------

// Validate runs the minimal checks spec §4.1 lists explicitly: non-empty
// terminal set, non-empty non-terminal set, non-empty rule set, the start
// symbol appears as some rule's lhs, and the start symbol is classified as a
// non-terminal. It returns the first violated invariant, or nil. A start
// symbol that is classified as a terminal is reported as
// StartSymbolIsNotNonTerminal before the rule-lhs check runs; a start symbol
// that is in neither set is reported as StartSymbolNotFoundInRules.
func (g *Grammar) Validate() error {
	if len(g.terminals.order) == 0 {
		return &GrammarError{Kind: EmptyTerminals, Detail: g.name}
	}
	if len(g.nonterminals.order) == 0 {
		return &GrammarError{Kind: EmptyNonTerminals, Detail: g.name}
	}
	if len(g.rules) == 0 {
		return &GrammarError{Kind: EmptyRules, Detail: g.name}
	}
	if g.terminals.has(g.start) {
		return &GrammarError{Kind: StartSymbolIsNotNonTerminal, Symbol: g.start}
	}
	if len(g.RulesFor(g.start)) == 0 {
		return &GrammarError{Kind: StartSymbolNotFoundInRules, Symbol: g.start}
	}
	if !g.nonterminals.has(g.start) {
		return &GrammarError{Kind: StartSymbolIsNotNonTerminal, Symbol: g.start}
	}
	return nil
}

// ValidateStructure runs the further structural checks spec §4.1 mentions
// but leaves to "the grammar exposes them": overlap between the terminal and
// non-terminal sets, a rule's lhs being a terminal or otherwise not a
// non-terminal, unknown rhs symbols,
// unreachable non-terminals, and non-productive non-terminals. It collects
// every violation found rather than stopping at the first, since these are
// independent structural facts about the grammar (as opposed to Validate's
// checks, which are prerequisites for each other).
func (g *Grammar) ValidateStructure() []error {
	var errs []error

	for _, t := range g.terminals.order {
		if g.nonterminals.has(t) {
			errs = append(errs, &GrammarError{Kind: OverlapBetweenSets, Symbol: t})
		}
	}

	for _, r := range g.rules {
		if g.terminals.has(r.LHS) {
			errs = append(errs, &GrammarError{Kind: LhsIsTerminal, Rule: r})
		} else if !g.nonterminals.has(r.LHS) {
			errs = append(errs, &GrammarError{Kind: LhsIsNotNonTerminal, Rule: r})
		}
		for _, sym := range r.RHS {
			if !g.terminals.has(sym) && !g.nonterminals.has(sym) {
				errs = append(errs, &GrammarError{Kind: UnknownSymbolInRhs, Rule: r, Symbol: sym})
			}
		}
	}

	reachable := g.reachableNonTerminals()
	for _, nt := range g.nonterminals.order {
		if !reachable[nt.Name] {
			errs = append(errs, &GrammarError{Kind: UnreachableNonTerminal, Symbol: nt})
		}
	}

	productive := g.productiveNonTerminals()
	for _, nt := range g.nonterminals.order {
		if !productive[nt.Name] {
			errs = append(errs, &GrammarError{Kind: NonProductiveNonTerminal, Symbol: nt})
		}
	}

	return errs
}

// reachableNonTerminals computes the set of non-terminals reachable from
// start by following rule right-hand sides, starting at start itself.
func (g *Grammar) reachableNonTerminals() map[string]bool {
	reachable := map[string]bool{g.start.Name: true}
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if !reachable[r.LHS.Name] {
				continue
			}
			for _, sym := range r.RHS {
				if g.nonterminals.has(sym) && !reachable[sym.Name] {
					reachable[sym.Name] = true
					changed = true
				}
			}
		}
	}
	return reachable
}

// productiveNonTerminals computes the set of non-terminals that can derive
// some string of terminals (i.e. have at least one rule whose rhs consists
// entirely of terminals or already-productive non-terminals).
func (g *Grammar) productiveNonTerminals() map[string]bool {
	productive := map[string]bool{}
	for changed := true; changed; {
		changed = false
		for _, r := range g.rules {
			if productive[r.LHS.Name] {
				continue
			}
			ok := true
			for _, sym := range r.RHS {
				if g.nonterminals.has(sym) && !productive[sym.Name] {
					ok = false
					break
				}
			}
			if ok {
				productive[r.LHS.Name] = true
				changed = true
			}
		}
	}
	return productive
}
