package lr

import (
	"strconv"
	"strings"
)

// ActionKind is the derived action cached on an Item (spec §3, §4.2).
type ActionKind int

const (
	// ShiftKind marks an incomplete item: the parser should shift.
	ShiftKind ActionKind = iota
	// ReduceKind marks a complete item whose lhs is not S'.
	ReduceKind
	// AcceptKind marks the complete augmented start item S' -> S •.
	AcceptKind
)

func (k ActionKind) String() string {
	switch k {
	case ShiftKind:
		return "shift"
	case ReduceKind:
		return "reduce"
	case AcceptKind:
		return "accept"
	}
	return "?"
}

// Item is a rule annotated with a dot position (spec §3): 0 ≤ DotPos ≤
// len(Rule.RHS). Identity is (Rule, DotPos); Action is a pure function of
// those two fields, cached for convenience.
type Item struct {
	Rule   Rule
	DotPos int
	Action ActionKind
}

// NewItem creates an item for rule at dotPos, deriving its Action.
func NewItem(rule Rule, dotPos int) Item {
	return Item{Rule: rule, DotPos: dotPos, Action: actionFor(rule, dotPos)}
}

func actionFor(rule Rule, dotPos int) ActionKind {
	if dotPos < rule.Len() {
		return ShiftKind
	}
	if rule.LHS.IsStart() {
		return AcceptKind
	}
	return ReduceKind
}

// IsComplete reports whether the dot has reached the end of the rhs.
func (i Item) IsComplete() bool { return i.DotPos >= i.Rule.Len() }

// DotSymbol returns the symbol immediately after the dot, or the zero Symbol
// and false when the item is complete (spec §4.2 dot_symbol).
func (i Item) DotSymbol() (Symbol, bool) {
	if i.IsComplete() {
		return Symbol{}, false
	}
	return i.Rule.RHS[i.DotPos], true
}

// PreDotSymbol returns the symbol immediately before the dot, or the zero
// Symbol and false when DotPos is 0 (spec §4.2 pre_dot_symbol; the validator
// is the caller that substitutes ε for the "none" case).
func (i Item) PreDotSymbol() (Symbol, bool) {
	if i.DotPos == 0 {
		return Symbol{}, false
	}
	return i.Rule.RHS[i.DotPos-1], true
}

// Advance returns a new item with the dot moved one position to the right,
// recomputing Action (spec §4.2). Callers must only advance incomplete
// items; advancing a complete item panics, since that would index past the
// rhs.
func (i Item) Advance() Item {
	if i.IsComplete() {
		panic("lr: Item.Advance called on a complete item")
	}
	return NewItem(i.Rule, i.DotPos+1)
}

// key returns a string uniquely identifying (Rule, DotPos), for use in sets
// and maps keyed by item identity.
func (i Item) key() string {
	var b strings.Builder
	b.WriteString(i.Rule.key())
	b.WriteByte('@')
	b.WriteString(strconv.Itoa(i.DotPos))
	return b.String()
}

// String renders an item as "[action] lhs -> s1 … • si …" (spec §6).
func (i Item) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(i.Action.String())
	b.WriteString("] ")
	b.WriteString(i.Rule.LHS.Name)
	b.WriteString(" ->")
	for idx, s := range i.Rule.RHS {
		if idx == i.DotPos {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteString(s.Name)
	}
	if i.DotPos == len(i.Rule.RHS) {
		b.WriteString(" •")
	}
	return b.String()
}
