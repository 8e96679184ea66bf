package lr

import "strings"

// Rule is a production lhs -> rhs1 rhs2 … rhsN, with n ≥ 1 (spec §3; the
// grammar does not support ε-rules). Its identity is derived from the lhs and
// the ordered rhs, symbol by symbol — two rules built independently from the
// same symbols are the same rule.
type Rule struct {
	LHS Symbol
	RHS []Symbol
}

// NewRule builds a rule. rhs must be non-empty; callers that need to enforce
// this invariant (GrammarBuilder.End does, by panicking on an empty rhs;
// FromRules does not check it) should do so before calling NewRule for rules derived from user
// input.
func NewRule(lhs Symbol, rhs ...Symbol) Rule {
	cp := make([]Symbol, len(rhs))
	copy(cp, rhs)
	return Rule{LHS: lhs, RHS: cp}
}

// Len returns the number of symbols on the right-hand side.
func (r Rule) Len() int { return len(r.RHS) }

// Equal reports whether two rules have the same lhs and the same rhs symbols
// in the same order (spec §3 "Identity is derived from the lhs and the
// ordered rhs").
func (r Rule) Equal(other Rule) bool {
	if r.LHS != other.LHS || len(r.RHS) != len(other.RHS) {
		return false
	}
	for i := range r.RHS {
		if r.RHS[i] != other.RHS[i] {
			return false
		}
	}
	return true
}

// key returns a string uniquely identifying this rule by its symbols, for use
// as a map key (e.g. when deduplicating or indexing rules).
func (r Rule) key() string {
	var b strings.Builder
	b.WriteString(r.LHS.Name)
	b.WriteByte('\x00')
	for _, s := range r.RHS {
		b.WriteString(s.Name)
		b.WriteByte('\x00')
	}
	return b.String()
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.Name)
	b.WriteString(" ->")
	for _, s := range r.RHS {
		b.WriteByte(' ')
		b.WriteString(s.Name)
	}
	return b.String()
}
